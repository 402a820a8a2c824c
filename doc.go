// SPDX-License-Identifier: MIT

// Package linalg is a small, generic linear-algebra toolkit: fixed-size
// vectors and matrices whose element type is any type providing the
// arithmetic an operation needs.
//
// 🚀 What is inside?
//
//	number/    - capability witnesses (Number, Integer, Float, Field, RealField),
//	             built-in witnesses Int[T]/Real[T] and the promotion table
//	vector/    - Vector[T]: 1-indexed, fixed length; Add/Sub/Scale/Dot/Norm/Normalize
//	matrix/    - Matrix[T]: 1-indexed, row-major; Add/Sub/Mul/Scale/Transpose/MulVec
//	gonumconv/ - zero-copy mat.Matrix views and copies to/from gonum
//	cmd/linalg - command line front end
//
// ✨ Principles
//
//   - Value semantics: every operation returns a fresh value, operands are never mutated.
//   - 1-based indexing with typed errors instead of panics.
//   - A capability an element type lacks is a compile-time error for the
//     plain operations and a *number.CapabilityError for run-time resolution.
//   - Mixed element types go through an explicit element rule (AddWith, ...)
//     or the documented promotion table (AddPromoted, ...), never an implicit one.
//
// Quick example:
//
//	a, _ := vector.Of(1.0, 2.0, 3.0)
//	b, _ := vector.Of(4.0, 5.0, 6.0)
//	d, _ := vector.Dot(a, b) // 32
//
//	m, _ := matrix.FromSlice(2, 2, []int{1, 2, 3, 4})
//	p, _ := matrix.Mul(m, m) // [[7 10] [15 22]]
package linalg
