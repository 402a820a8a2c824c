// SPDX-License-Identifier: MIT

// Package vector - dot product, norm and normalization.
//
// Determinism:
//   - Accumulators start at Zero() and fold i = 1..dims in increasing order;
//     for non-associative element types (floats) the order is part of the result.
package vector

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/linalg/internal/grid"
	"github.com/katalvlaran/linalg/number"
)

// DotWith returns Σ mul(a[i], b[i]) accumulated with acc, starting from
// acc.Zero().
//
// Errors:
//   - ErrDimensionMismatch if the lengths differ. Trailing elements of a
//     longer operand are never silently ignored.
//   - ErrNilVector if either operand is nil.
//
// Complexity: O(n).
func DotWith[T, U, V any](a *Vector[T], b *Vector[U], mul func(T, U) V, acc number.Accumulator[V]) (V, error) {
	sum := acc.Zero()
	if err := validateBinary(opDot, a, b); err != nil {
		return sum, err
	}
	for i := 0; i < a.dims; i++ {
		sum = acc.Add(sum, mul(a.vals[i], b.vals[i]))
	}

	return sum, nil
}

// Dot returns the dot product for built-in kinds.
func Dot[T number.Primitive](a, b *Vector[T]) (T, error) {
	return DotWith(a, b, func(x, y T) T { return x * y }, number.Sum[T]{})
}

// NormWith returns (Σ x_i^n)^(1/n) using the witness f.
//
// The components are raised to the n-th power WITHOUT taking their absolute
// value first. For even n this is the Lp norm; for odd n on mixed-sign data
// it is not (negative terms cancel, and a negative sum yields NaN under a
// fractional Powf).
//
// Errors:
//   - ErrInvalidNormOrder if n <= 0.
//   - ErrNilVector if v is nil.
//
// Complexity: O(n) Powi calls plus one Powf.
func NormWith[T any](v *Vector[T], n int32, f number.RealField[T]) (T, error) {
	sum := f.Zero()
	if v == nil {
		return sum, grid.Errorf(opNorm, ErrNilVector)
	}
	if n <= 0 {
		return sum, grid.Errorf(opNorm, ErrInvalidNormOrder)
	}
	for i := 0; i < v.dims; i++ {
		sum = f.Add(sum, f.Powi(v.vals[i], n))
	}

	return f.Powf(sum, 1/float64(n)), nil
}

// Norm returns the order-n norm of a float vector. See NormWith.
func Norm[T constraints.Float](v *Vector[T], n int32) (T, error) {
	return NormWith(v, n, number.Real[T]{})
}

// NormalizeWith returns (One / norm(2)) * v.
// A zero norm is not special-cased: the division follows the element type's
// own semantics (IEEE floats give Inf, then NaN elements).
//
// Errors:
//   - Any error of NormWith.
func NormalizeWith[T any](v *Vector[T], f number.RealField[T]) (*Vector[T], error) {
	norm, err := NormWith(v, 2, f)
	if err != nil {
		return nil, grid.Errorf(opNormalize, err)
	}

	return ScaleWith(f.Div(f.One(), norm), v, f.Mul)
}

// Normalize returns v scaled to unit Euclidean length.
func Normalize[T constraints.Float](v *Vector[T]) (*Vector[T], error) {
	return NormalizeWith(v, number.Real[T]{})
}
