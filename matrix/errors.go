// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import "github.com/katalvlaran/linalg/internal/grid"

// NOTE ON SHARING
// ---------------
// The values below are the same sentinels the vector package exports, so
// errors.Is(err, vector.ErrDimensionMismatch) also matches a matrix failure.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch.

var (
	// ErrInvalidDimension is returned when rows<=0 or cols<=0 at construction.
	ErrInvalidDimension = grid.ErrInvalidDimension

	// ErrIndexOutOfBounds indicates that a row or column index is 0 or past its bound.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = grid.ErrIndexOutOfBounds

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a flat
	// sequence shorter than rows*cols.
	ErrDimensionMismatch = grid.ErrDimensionMismatch

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = grid.ErrNilOperand
)
