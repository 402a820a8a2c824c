// SPDX-License-Identifier: MIT
// Package grid: sentinel error set shared by vector and matrix.
// Both public packages re-export these values, so errors.Is matches no matter
// which package a caller imports the sentinel from.

package grid

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ...". Return the sentinel wrapped
// with Errorf at the detection site; callers match with errors.Is.

var (
	// ErrInvalidDimension is returned when a requested size is zero or negative.
	ErrInvalidDimension = errors.New("linalg: invalid dimension")

	// ErrIndexOutOfBounds indicates a 1-based index of 0 or past the bound.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNilOperand indicates a nil receiver or argument.
	ErrNilOperand = errors.New("linalg: nil operand")
)

// Errorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
