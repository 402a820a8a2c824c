// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic operations on Matrix values:
// element-wise addition and subtraction, matrix multiplication, scalar
// multiplication, transpose and matrix–vector product. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Each operation comes in three flavours:
//     XxxWith (explicit element rule, result type chosen by the rule),
//     Xxx (homogeneous built-in kinds), XxxPromoted (built-in kinds, result
//     kind checked against number.Promote).
//
// Notes:
//   - Operands are never mutated; every result is a fresh allocation.
//   - A failing call allocates nothing.

package matrix

import (
	"github.com/katalvlaran/linalg/internal/grid"
	"github.com/katalvlaran/linalg/number"
	"github.com/katalvlaran/linalg/vector"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMulVec    = "MulVec"
	opRow       = "Row"
	opCol       = "Col"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return grid.Errorf(tag, err)
}

// zipWith computes out[r,c] = op(a[r,c], b[r,c]).
// Internal helper for Add/Sub to share validation and the flat loop.
//
// Determinism:
//   - Single flat walk 0..(r*c−1), i.e. row-major.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func zipWith[T, U, V any](tag string, a *Matrix[T], b *Matrix[U], op func(T, U) V) (*Matrix[V], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Matrix[V]{rows: a.rows, cols: a.cols, data: make([]V, len(a.data))}
	for i := range out.data {
		out.data[i] = op(a.data[i], b.data[i])
	}

	return out, nil
}

// AddWith returns the element-wise sum under the element rule add.
//
// Errors:
//   - ErrNilMatrix          (either operand nil).
//   - ErrDimensionMismatch  (shapes differ).
func AddWith[T, U, V any](a *Matrix[T], b *Matrix[U], add func(T, U) V) (*Matrix[V], error) {
	return zipWith(opAdd, a, b, add)
}

// SubWith returns the element-wise difference under the element rule sub.
func SubWith[T, U, V any](a *Matrix[T], b *Matrix[U], sub func(T, U) V) (*Matrix[V], error) {
	return zipWith(opSub, a, b, sub)
}

// Add returns a + b for built-in kinds.
func Add[T number.Primitive](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b for built-in kinds.
func Sub[T number.Primitive](a, b *Matrix[T]) (*Matrix[T], error) {
	return zipWith(opSub, a, b, func(x, y T) T { return x - y })
}

// AddPromoted returns a + b with result kind V checked against the promotion table.
//
// Errors:
//   - number.ErrPromotion if V is not the promotion of T and U.
func AddPromoted[V, T, U number.Primitive](a *Matrix[T], b *Matrix[U]) (*Matrix[V], error) {
	if err := number.CheckPromotion[V, T, U](); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return zipWith(opAdd, a, b, func(x T, y U) V { return V(x) + V(y) })
}

// SubPromoted returns a - b with result kind V. See AddPromoted.
func SubPromoted[V, T, U number.Primitive](a *Matrix[T], b *Matrix[U]) (*Matrix[V], error) {
	if err := number.CheckPromotion[V, T, U](); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return zipWith(opSub, a, b, func(x T, y U) V { return V(x) - V(y) })
}

// MulWith computes the matrix product of a (R×K) and b (K×C):
//
//	out[l,c] = Σ_{k=1..K} mul(a[l,k], b[k,c])
//
// accumulated with acc starting from acc.Zero(), in increasing k.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→j→k triple loop over the flat buffers. No zero-skipping:
//     for generic element types 0*x is not assumed to be 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(R*K*C), Space O(R*C).
func MulWith[T, U, V any](a *Matrix[T], b *Matrix[U], mul func(T, U) V, acc number.Accumulator[V]) (*Matrix[V], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.rows, a.cols, b.cols
	out := &Matrix[V]{rows: rows, cols: cols, data: make([]V, rows*cols)}
	for i := 0; i < rows; i++ {
		rowA := i * inner
		for j := 0; j < cols; j++ {
			sum := acc.Zero()
			for k := 0; k < inner; k++ {
				sum = acc.Add(sum, mul(a.data[rowA+k], b.data[k*cols+j]))
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}

// Mul returns the matrix product for built-in kinds.
func Mul[T number.Primitive](a, b *Matrix[T]) (*Matrix[T], error) {
	return MulWith(a, b, func(x, y T) T { return x * y }, number.Sum[T]{})
}

// MulPromoted returns the matrix product with result kind V.
func MulPromoted[V, T, U number.Primitive](a *Matrix[T], b *Matrix[U]) (*Matrix[V], error) {
	if err := number.CheckPromotion[V, T, U](); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return MulWith(a, b, func(x T, y U) V { return V(x) * V(y) }, number.Sum[V]{})
}

// ScaleWith returns a matrix whose cells are mul(s, m[r,c]).
// The scalar is ALWAYS the left operand.
//
// Errors:
//   - ErrNilMatrix if m is nil.
func ScaleWith[S, T, V any](s S, m *Matrix[T], mul func(S, T) V) (*Matrix[V], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Matrix[V]{rows: m.rows, cols: m.cols, data: make([]V, len(m.data))}
	for i, x := range m.data {
		out.data[i] = mul(s, x)
	}

	return out, nil
}

// Scale returns s * m for built-in kinds.
func Scale[T number.Primitive](s T, m *Matrix[T]) (*Matrix[T], error) {
	return ScaleWith(s, m, func(x, y T) T { return x * y })
}

// ScalePromoted returns s * m with result kind V.
func ScalePromoted[V, S, T number.Primitive](s S, m *Matrix[T]) (*Matrix[V], error) {
	if err := number.CheckPromotion[V, S, T](); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return ScaleWith(s, m, func(x S, y T) V { return V(x) * V(y) })
}

// Transpose returns a new cols×rows matrix with out[c,r] = m[r,c].
func Transpose[T any](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return New(m.cols, m.rows, func(r, c int) T { return m.data[(c-1)*m.cols+r-1] })
}

// MulVecWith computes y = m·x for m (R×K) and x of length K:
// y[l] = Σ_{k=1..K} mul(m[l,k], x[k]), zero-initialized, increasing k.
//
// Errors:
//   - ErrNilMatrix if m is nil, vector.ErrNilVector if x is nil.
//   - ErrDimensionMismatch if x.Dims() != m.Cols().
//
// Complexity: O(R*K).
func MulVecWith[T, U, V any](m *Matrix[T], x *vector.Vector[U], mul func(T, U) V, acc number.Accumulator[V]) (*vector.Vector[V], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if x == nil {
		return nil, matrixErrorf(opMulVec, vector.ErrNilVector)
	}
	if err := ValidateVecLen(x.Dims(), m.cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	xs := x.Values()

	return vector.New(m.rows, func(l int) V {
		base := (l - 1) * m.cols
		sum := acc.Zero()
		for k := 0; k < m.cols; k++ {
			sum = acc.Add(sum, mul(m.data[base+k], xs[k]))
		}

		return sum
	})
}

// MulVec returns m·x for built-in kinds.
func MulVec[T number.Primitive](m *Matrix[T], x *vector.Vector[T]) (*vector.Vector[T], error) {
	return MulVecWith(m, x, func(a, b T) T { return a * b }, number.Sum[T]{})
}

// Row returns a copy of 1-based row r as a vector of length Cols().
func Row[T any](m *Matrix[T], r int) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if err := grid.CheckIndex(r, m.rows); err != nil {
		return nil, matrixAtErrorf(opRow, r, 1, err)
	}
	base := (r - 1) * m.cols

	return vector.New(m.cols, func(c int) T { return m.data[base+c-1] })
}

// Col returns a copy of 1-based column c as a vector of length Rows().
func Col[T any](m *Matrix[T], c int) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	if err := grid.CheckIndex(c, m.cols); err != nil {
		return nil, matrixAtErrorf(opCol, 1, c, err)
	}

	return vector.New(m.rows, func(r int) T { return m.data[(r-1)*m.cols+c-1] })
}
