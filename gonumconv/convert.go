// SPDX-License-Identifier: MIT

package gonumconv

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/number"
	"github.com/katalvlaran/linalg/vector"
	"gonum.org/v1/gonum/mat"
)

// convErrorf tags err with the conversion name.
func convErrorf(fn string, err error) error {
	return fmt.Errorf("gonumconv.%s: %w", fn, err)
}

// ToDense copies m into a new *mat.Dense, widening elements to float64.
//
// Errors:
//   - matrix.ErrNilMatrix if m is nil.
func ToDense[T number.Primitive](m *matrix.Matrix[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, convErrorf("ToDense", err)
	}
	vals := m.Values()
	data := make([]float64, len(vals))
	for i, x := range vals {
		data[i] = float64(x)
	}

	return mat.NewDense(m.Rows(), m.Cols(), data), nil
}

// FromMatrix copies any mat.Matrix into a new *matrix.Matrix[float64].
//
// Errors:
//   - matrix.ErrInvalidDimension if a has zero rows or columns.
func FromMatrix(a mat.Matrix) (*matrix.Matrix[float64], error) {
	if a == nil {
		return nil, convErrorf("FromMatrix", matrix.ErrNilMatrix)
	}
	rows, cols := a.Dims()
	m, err := matrix.New(rows, cols, func(r, c int) float64 { return a.At(r-1, c-1) })
	if err != nil {
		return nil, convErrorf("FromMatrix", err)
	}

	return m, nil
}

// ToVecDense copies v into a new *mat.VecDense, widening elements to float64.
//
// Errors:
//   - vector.ErrNilVector if v is nil.
func ToVecDense[T number.Primitive](v *vector.Vector[T]) (*mat.VecDense, error) {
	if v == nil {
		return nil, convErrorf("ToVecDense", vector.ErrNilVector)
	}
	vals := v.Values()
	data := make([]float64, len(vals))
	for i, x := range vals {
		data[i] = float64(x)
	}

	return mat.NewVecDense(len(data), data), nil
}

// FromVector copies any mat.Vector into a new *vector.Vector[float64].
//
// Errors:
//   - vector.ErrInvalidDimension if x has length zero.
func FromVector(x mat.Vector) (*vector.Vector[float64], error) {
	if x == nil {
		return nil, convErrorf("FromVector", vector.ErrNilVector)
	}
	v, err := vector.New(x.Len(), func(i int) float64 { return x.AtVec(i - 1) })
	if err != nil {
		return nil, convErrorf("FromVector", err)
	}

	return v, nil
}
