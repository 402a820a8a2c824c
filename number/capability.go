// SPDX-License-Identifier: MIT

// Package number: capability interfaces.
//
// Purpose:
//   - Declare the minimal algebraic contracts an element type must supply.
//   - Keep every capability independent so a witness may implement any subset.
//
// Notes:
//   - There is NO default implementation of any capability. A type lacking a
//     needed capability cannot be used where it is required.
package number

// Number supplies the algebraic identities.
// Every element type used generically, or as the inferred result type of an
// accumulating operation, must provide it.
type Number[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T
}

// Integer refines Number for integral types with power by unsigned exponent.
type Integer[T any] interface {
	Number[T]

	// Pow returns x raised to exp. Overflow wraps like native Go integers.
	Pow(x T, exp uint32) T
}

// Float refines Number for real-valued types.
type Float[T any] interface {
	Number[T]

	// Powi returns x raised to an integer exponent.
	Powi(x T, exp int32) T

	// Powf returns x raised to a real exponent.
	Powf(x T, exp float64) T

	// Sqrt returns the square root of x.
	Sqrt(x T) T
}

// Arithmetic supplies closed binary operations on T.
type Arithmetic[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
}

// Accumulator is what a zero-initialized running sum needs:
// an additive identity and closed addition.
type Accumulator[T any] interface {
	Number[T]
	Add(a, b T) T
}

// Field combines identities with the four closed operations.
type Field[T any] interface {
	Number[T]
	Arithmetic[T]
}

// RealField is the capability set required by Norm and Normalize.
type RealField[T any] interface {
	Float[T]
	Arithmetic[T]
}
