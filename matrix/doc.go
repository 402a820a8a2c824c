// SPDX-License-Identifier: MIT

// Package matrix provides Matrix[T], a fixed rows×cols, 1-indexed grid of
// elements of one type stored in row-major order, and the algebra over it.
//
// ✨ Key features:
//   - explicit row-major layout: cell(r, c) lives at (r-1)*cols + (c-1)
//   - 1-based, bounds-checked At/Set returning ErrIndexOutOfBounds
//   - element-wise Add/Sub, matrix product Mul, scalar multiply (scalar on the LEFT)
//   - Transpose, Row/Col extraction and matrix–vector product MulVec
//   - heterogeneous arithmetic through explicit element rules (MulWith, ...)
//     or the number promotion table (MulPromoted, ...)
//
// ⚙️ Usage:
//
//	a, _ := matrix.FromSlice(2, 2, []int{1, 2, 3, 4})
//	b, _ := matrix.FromSlice(2, 2, []int{5, 6, 7, 8})
//	p, err := matrix.Mul(a, b) // [[19 22] [43 50]]
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//	  // a.Cols() != b.Rows()
//	}
//
// Errors are the sentinels in errors.go, shared with package vector.
//
// Performance:
//
//   - Add/Sub/Scale/Transpose: O(r*c)
//   - Mul: O(R*K*C) with a single fresh R×C buffer
package matrix
