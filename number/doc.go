// Package number defines what "numeric" means for an element type stored in
// a vector.Vector or matrix.Matrix.
//
// 🚀 What is a capability?
//
//	A capability is a small contract an element type must satisfy before an
//	algorithm can use it. Capabilities are structural: a type is never forced
//	into a class hierarchy, it is served by a *witness* value that implements
//	the capability interfaces for it.
//
//	  Number[T]      - additive and multiplicative identities (Zero, One)
//	  Integer[T]     - Number + Pow by an unsigned exponent
//	  Float[T]       - Number + Powi, Powf, Sqrt
//	  Arithmetic[T]  - closed Add, Sub, Mul, Div
//	  Accumulator[T] - Number + Add (what a sum of products needs)
//	  Field[T]       - Number + Arithmetic
//	  RealField[T]   - Float + Arithmetic (what Norm/Normalize need)
//
// ✨ Built-in witnesses:
//
//	Int[T]  serves every Go integer kind  (Integer + Field).
//	Real[T] serves float32 and float64     (RealField).
//
// Both are zero-size values; pass them where a capability is required:
//
//	norm, err := vector.NormWith(v, 2, number.Real[float64]{})
//
// ⚙️ Static vs. construction-time checks:
//
//	Plain operations (vector.Add, matrix.Mul, ...) are statically constrained
//	by Primitive, so a type without the capability does not compile. For code
//	that is generic over arbitrary T, NumberOf/FieldOf/IntegerOf/RealFieldOf
//	resolve a witness at run time and fail fast with ErrMissingCapability.
//	Each capability is looked up on its own: a type with only Zero and One
//	is a Number, one that adds Pow is an Integer.
//
// 🔁 Promotion:
//
//	Go has no mixed-type arithmetic, so heterogeneous built-in operations
//	(int + float64, ...) consult an explicit promotion table; see Promote.
package number
