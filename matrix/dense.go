// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe 1-based accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula (r-1)*cols + (c-1).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, row outer / column inner).
//
// Complexity quicksheet:
//   - At/Set/Rows/Cols/Dims: O(1); Clone/Values: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/internal/grid"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// matrixAtErrorf wraps an error with a uniform Matrix context and callsite indices.
func matrixAtErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// FormatOption configures Format.
type FormatOption = grid.Option

// Rendering options shared with vector.Format.
var (
	WithSeparator    = grid.WithSeparator
	WithRowSeparator = grid.WithRowSeparator
	WithPrecision    = grid.WithPrecision
)

// Matrix is a fixed rows×cols, 1-indexed, row-major grid of T.
//   - rows, cols hold dimensions (both > 0 for a constructed matrix).
//   - data is a flat buffer of length rows*cols, exclusively owned.
//
// Safe for concurrent readers once constructed; Set requires exclusive access.
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	if m == nil {
		return 0
	}

	return m.rows
}

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if m == nil {
		return 0
	}

	return m.cols
}

// Dims returns (rows, cols).
func (m *Matrix[T]) Dims() (int, int) {
	return m.Rows(), m.Cols()
}

// IsSquare reports whether rows == cols. A nil matrix is not square.
func (m *Matrix[T]) IsSquare() bool {
	return m != nil && m.rows == m.cols
}

// At retrieves the element at 1-based (row, col).
//
// Errors:
//   - ErrIndexOutOfBounds if either coordinate is 0 or exceeds its bound.
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, matrixAtErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := grid.Offset(row, col, m.rows, m.cols)
	if err != nil {
		return zero, matrixAtErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set assigns v at 1-based (row, col). This is the only mutating operation.
//
// Errors:
//   - ErrIndexOutOfBounds if either coordinate is 0 or exceeds its bound.
//   - ErrNilMatrix on a nil receiver.
//
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	if m == nil {
		return matrixAtErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := grid.Offset(row, col, m.rows, m.cols)
	if err != nil {
		return matrixAtErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Values returns a copy of the cells in row-major order.
func (m *Matrix[T]) Values() []T {
	if m == nil {
		return nil
	}
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: m.Values()}
}

// String renders rows on separate lines with space-separated cells.
func (m *Matrix[T]) String() string {
	return m.Format()
}

// Format renders the matrix with the given options.
//
//	m.Format(matrix.WithRowSeparator(""))  // every cell on one line, row-major
func (m *Matrix[T]) Format(opts ...FormatOption) string {
	if m == nil {
		return "<nil>"
	}

	return grid.RenderRows(m.data, m.cols, opts...)
}

// Equal reports whether a and b have the same shape and cells.
// Two nil matrices are equal.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
