// SPDX-License-Identifier: MIT

package gonumconv

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/number"
	"gonum.org/v1/gonum/mat"
)

// View is a zero-copy, read-only mat.Matrix over a *matrix.Matrix[T].
// Elements are widened to float64 on read.
type View[T number.Primitive] struct {
	m *matrix.Matrix[T]
}

// Compile-time assertion for mat.Matrix conformance.
var _ mat.Matrix = View[float64]{}

// NewView wraps m. The view observes later Set calls on m.
//
// Errors:
//   - matrix.ErrNilMatrix if m is nil.
func NewView[T number.Primitive](m *matrix.Matrix[T]) (View[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return View[T]{}, fmt.Errorf("gonumconv.NewView: %w", err)
	}

	return View[T]{m: m}, nil
}

// Dims returns (rows, cols).
func (v View[T]) Dims() (r, c int) { return v.m.Dims() }

// At returns the element at 0-based (i, j). It panics with
// mat.ErrRowAccess or mat.ErrColAccess when out of range, as gonum types do.
func (v View[T]) At(i, j int) float64 {
	r, c := v.m.Dims()
	if uint(i) >= uint(r) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(c) {
		panic(mat.ErrColAccess)
	}
	x, _ := v.m.At(i+1, j+1)

	return float64(x)
}

// T returns the implicit transpose.
func (v View[T]) T() mat.Matrix { return mat.Transpose{Matrix: v} }
