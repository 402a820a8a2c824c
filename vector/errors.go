// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (wrapped with an operation tag);
// tests and callers MUST match them via errors.Is. No operation panics on
// user-triggered error conditions.

package vector

import (
	"errors"

	"github.com/katalvlaran/linalg/internal/grid"
)

var (
	// ErrInvalidDimension is returned when dims <= 0 at construction.
	ErrInvalidDimension = grid.ErrInvalidDimension

	// ErrIndexOutOfBounds is returned by At/Set for index 0 or index > Dims().
	ErrIndexOutOfBounds = grid.ErrIndexOutOfBounds

	// ErrDimensionMismatch is returned when operands have different lengths.
	ErrDimensionMismatch = grid.ErrDimensionMismatch

	// ErrNilVector is returned when a nil *Vector is passed or used as receiver.
	ErrNilVector = grid.ErrNilOperand

	// ErrInvalidNormOrder is returned by Norm for an order <= 0.
	ErrInvalidNormOrder = errors.New("linalg: norm order must be > 0")
)
