// Package vector provides Vector[T], an ordered, fixed-length, 1-indexed
// sequence of elements of one type, with element-wise and algebraic
// operations that never mutate their operands.
//
// ✨ Key features:
//   - 1-based, bounds-checked At/Set returning ErrIndexOutOfBounds
//   - element-wise Add/Sub, scalar multiply (scalar on the LEFT)
//   - Dot with a strict equal-length check
//   - Norm of order n and Normalize for float elements
//   - heterogeneous arithmetic through explicit element rules (AddWith, ...)
//     or the number promotion table (AddPromoted, ...)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linalg/vector"
//
//	a, _ := vector.Of(1.0, 2.0, 3.0)
//	b, _ := vector.Repeat(0.5, 3)
//	sum, err := vector.Add(a, b)
//	if err != nil {
//	  // handle ErrDimensionMismatch
//	}
//	n, _ := vector.Norm(sum, 2)
//
// Performance:
//
//   - Time:   O(n) for every operation
//   - Memory: one fresh O(n) buffer per result
package vector
