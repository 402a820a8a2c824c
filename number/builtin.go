// SPDX-License-Identifier: MIT

// Package number: witnesses for Go's built-in numeric kinds.
//
// Purpose:
//   - Make every built-in integer and float width a canonical capability instance.
//   - Keep witnesses zero-size so passing them by value costs nothing.
//
// Determinism & Performance:
//   - All methods are pure; no allocation, no hidden state.
package number

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Primitive is the type set of Go's built-in integer and float kinds,
// including named types whose underlying type is one of them.
type Primitive interface {
	constraints.Integer | constraints.Float
}

// Compile-time assertions for capability conformance.
var (
	_ Integer[int]         = Int[int]{}
	_ Field[uint8]         = Int[uint8]{}
	_ RealField[float64]   = Real[float64]{}
	_ RealField[float32]   = Real[float32]{}
	_ Accumulator[float32] = Real[float32]{}
	_ Accumulator[uint16]  = Sum[uint16]{}
)

// Int is the witness for built-in integer kinds.
type Int[T constraints.Integer] struct{}

// Zero returns 0.
func (Int[T]) Zero() T { return 0 }

// One returns 1.
func (Int[T]) One() T { return 1 }

// Add returns a + b.
func (Int[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Int[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Int[T]) Mul(a, b T) T { return a * b }

// Div returns a / b (truncated). Division by zero panics as for native Go integers.
func (Int[T]) Div(a, b T) T { return a / b }

// Pow returns x^exp by binary exponentiation.
// Complexity: O(log exp).
func (Int[T]) Pow(x T, exp uint32) T {
	var result T = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= x
		}
		exp >>= 1
		if exp > 0 {
			x *= x
		}
	}

	return result
}

// Real is the witness for built-in float kinds.
type Real[T constraints.Float] struct{}

// Zero returns 0.0.
func (Real[T]) Zero() T { return 0 }

// One returns 1.0.
func (Real[T]) One() T { return 1 }

// Add returns a + b.
func (Real[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (Real[T]) Sub(a, b T) T { return a - b }

// Mul returns a * b.
func (Real[T]) Mul(a, b T) T { return a * b }

// Div returns a / b with IEEE-754 semantics (x/0 is ±Inf or NaN).
func (Real[T]) Div(a, b T) T { return a / b }

// Powi returns x^exp.
func (Real[T]) Powi(x T, exp int32) T {
	return T(math.Pow(float64(x), float64(exp)))
}

// Powf returns x^exp; a negative base with a fractional exponent yields NaN.
func (Real[T]) Powf(x T, exp float64) T {
	return T(math.Pow(float64(x), exp))
}

// Sqrt returns √x.
func (Real[T]) Sqrt(x T) T {
	return T(math.Sqrt(float64(x)))
}

// Sum is the Accumulator witness for any built-in kind: the identities plus
// native addition. It backs the plain Dot, Mul and MulVec kernels.
type Sum[T Primitive] struct{}

// Zero returns 0.
func (Sum[T]) Zero() T { return 0 }

// One returns 1.
func (Sum[T]) One() T { return 1 }

// Add returns a + b.
func (Sum[T]) Add(a, b T) T { return a + b }
