// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Purpose:
//   - Single entry point (New) that validates the shape and fills row-major
//     with a fixed order: row = 1..rows outer, col = 1..cols inner.
//   - Every other constructor is a thin generator over New, so validation and
//     fill order are defined exactly once.
//
// Determinism:
//   - Generators are called exactly rows*cols times in row-major order.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/internal/grid"
	"github.com/katalvlaran/linalg/number"
)

// Constructor tags for error wrapping.
const (
	ctorNew       = "New"
	ctorZeros     = "Zeros"
	ctorFromSlice = "FromSlice"
	ctorRepeat    = "Repeat"
	ctorIdentity  = "Identity"
)

// ctorErrorf wraps a constructor failure with the requested shape.
func ctorErrorf(ctor string, rows, cols int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", ctor, rows, cols, err)
}

// New builds a rows×cols matrix with cell(r, c) = gen(r, c).
//
// Errors:
//   - ErrInvalidDimension if rows <= 0, cols <= 0 or rows*cols overflows int
//     (gen is never called).
//
// Complexity: O(rows*cols) calls to gen.
func New[T any](rows, cols int, gen func(row, col int) T) (*Matrix[T], error) {
	if err := grid.CheckDims(rows, cols); err != nil {
		return nil, ctorErrorf(ctorNew, rows, cols, err)
	}
	data := make([]T, rows*cols)
	for r := 1; r <= rows; r++ {
		base := (r - 1) * cols
		for c := 1; c <= cols; c++ {
			data[base+c-1] = gen(r, c)
		}
	}

	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// Zeros builds a rows×cols matrix filled with num.Zero().
func Zeros[T any](rows, cols int, num number.Number[T]) (*Matrix[T], error) {
	if err := grid.CheckDims(rows, cols); err != nil {
		return nil, ctorErrorf(ctorZeros, rows, cols, err)
	}
	zero := num.Zero()

	return New(rows, cols, func(int, int) T { return zero })
}

// ZerosOf builds a zero matrix of a built-in kind.
func ZerosOf[T number.Primitive](rows, cols int) (*Matrix[T], error) {
	return Zeros[T](rows, cols, number.Sum[T]{})
}

// FromSlice builds a rows×cols matrix with cell(r, c) = vals[(r-1)*cols + c-1].
// Values past rows*cols are ignored. The caller's slice is not retained.
//
// Errors:
//   - ErrInvalidDimension if rows <= 0 or cols <= 0.
//   - ErrDimensionMismatch if len(vals) < rows*cols.
func FromSlice[T any](rows, cols int, vals []T) (*Matrix[T], error) {
	if err := grid.CheckDims(rows, cols); err != nil {
		return nil, ctorErrorf(ctorFromSlice, rows, cols, err)
	}
	if len(vals) < rows*cols {
		return nil, ctorErrorf(ctorFromSlice, rows, cols,
			fmt.Errorf("need %d values, got %d: %w", rows*cols, len(vals), ErrDimensionMismatch))
	}

	return New(rows, cols, func(r, c int) T { return vals[(r-1)*cols+c-1] })
}

// Repeat builds a rows×cols matrix where every cell holds value.
func Repeat[T any](value T, rows, cols int) (*Matrix[T], error) {
	if err := grid.CheckDims(rows, cols); err != nil {
		return nil, ctorErrorf(ctorRepeat, rows, cols, err)
	}

	return New(rows, cols, func(int, int) T { return value })
}

// Identity builds the n×n identity: One() on the diagonal, Zero() elsewhere.
func Identity[T any](n int, num number.Number[T]) (*Matrix[T], error) {
	if err := grid.CheckDims(n, n); err != nil {
		return nil, ctorErrorf(ctorIdentity, n, n, err)
	}
	zero, one := num.Zero(), num.One()

	return New(n, n, func(r, c int) T {
		if r == c {
			return one
		}

		return zero
	})
}

// IdentityOf builds the n×n identity of a built-in kind.
func IdentityOf[T number.Primitive](n int) (*Matrix[T], error) {
	return Identity[T](n, number.Sum[T]{})
}
