// SPDX-License-Identifier: MIT

// Package vector - element-wise operations and scalar multiply.
//
// Three flavours of every binary operation:
//   - XxxWith: the element rule is passed explicitly, so the result element
//     type V is whatever that rule returns (heterogeneous arithmetic).
//   - Xxx: homogeneous built-in kinds, native Go operators.
//   - XxxPromoted: heterogeneous built-in kinds; V must match the promotion
//     table (number.Promote), operands are converted to V before the operator.
//
// Contract:
//   - Operands are never mutated; every result is freshly allocated.
//   - A failing call allocates nothing.
//   - Fixed loop order i = 1..dims.
package vector

import (
	"github.com/katalvlaran/linalg/internal/grid"
	"github.com/katalvlaran/linalg/number"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opDot       = "Dot"
	opNorm      = "Norm"
	opNormalize = "Normalize"
	opMap       = "Map"
)

// validateBinary checks both operands are present and equally long.
func validateBinary[T, U any](tag string, a *Vector[T], b *Vector[U]) error {
	if a == nil || b == nil {
		return grid.Errorf(tag, ErrNilVector)
	}
	if a.dims != b.dims {
		return grid.Errorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// zipWith is the shared kernel of Add/Sub: out[i] = op(a[i], b[i]).
func zipWith[T, U, V any](tag string, a *Vector[T], b *Vector[U], op func(T, U) V) (*Vector[V], error) {
	if err := validateBinary(tag, a, b); err != nil {
		return nil, err
	}

	return New(a.dims, func(i int) V { return op(a.vals[i-1], b.vals[i-1]) })
}

// AddWith returns the element-wise sum under the element rule add.
//
// Errors:
//   - ErrDimensionMismatch if a.Dims() != b.Dims().
//   - ErrNilVector if either operand is nil.
//
// Complexity: O(n).
func AddWith[T, U, V any](a *Vector[T], b *Vector[U], add func(T, U) V) (*Vector[V], error) {
	return zipWith(opAdd, a, b, add)
}

// SubWith returns the element-wise difference under the element rule sub.
func SubWith[T, U, V any](a *Vector[T], b *Vector[U], sub func(T, U) V) (*Vector[V], error) {
	return zipWith(opSub, a, b, sub)
}

// Add returns a + b for built-in kinds.
func Add[T number.Primitive](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b for built-in kinds.
func Sub[T number.Primitive](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opSub, a, b, func(x, y T) T { return x - y })
}

// AddPromoted returns a + b with result kind V.
//
// Errors:
//   - number.ErrPromotion if V is not the promotion of T and U.
//   - ErrDimensionMismatch / ErrNilVector as Add.
func AddPromoted[V, T, U number.Primitive](a *Vector[T], b *Vector[U]) (*Vector[V], error) {
	if err := number.CheckPromotion[V, T, U](); err != nil {
		return nil, grid.Errorf(opAdd, err)
	}

	return zipWith(opAdd, a, b, func(x T, y U) V { return V(x) + V(y) })
}

// SubPromoted returns a - b with result kind V. See AddPromoted.
func SubPromoted[V, T, U number.Primitive](a *Vector[T], b *Vector[U]) (*Vector[V], error) {
	if err := number.CheckPromotion[V, T, U](); err != nil {
		return nil, grid.Errorf(opSub, err)
	}

	return zipWith(opSub, a, b, func(x T, y U) V { return V(x) - V(y) })
}

// ScaleWith returns a vector whose elements are mul(s, v[i]).
// The scalar is ALWAYS the left operand, so mul decides the result type and,
// for non-commutative element types, the product order.
//
// Errors:
//   - ErrNilVector if v is nil.
//
// Complexity: O(n).
func ScaleWith[S, T, V any](s S, v *Vector[T], mul func(S, T) V) (*Vector[V], error) {
	if v == nil {
		return nil, grid.Errorf(opScale, ErrNilVector)
	}

	return New(v.dims, func(i int) V { return mul(s, v.vals[i-1]) })
}

// Scale returns s * v for built-in kinds.
func Scale[T number.Primitive](s T, v *Vector[T]) (*Vector[T], error) {
	return ScaleWith(s, v, func(x, y T) T { return x * y })
}

// ScalePromoted returns s * v with result kind V.
func ScalePromoted[V, S, T number.Primitive](s S, v *Vector[T]) (*Vector[V], error) {
	if err := number.CheckPromotion[V, S, T](); err != nil {
		return nil, grid.Errorf(opScale, err)
	}

	return ScaleWith(s, v, func(x S, y T) V { return V(x) * V(y) })
}
