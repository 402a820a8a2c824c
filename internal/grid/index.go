// SPDX-License-Identifier: MIT

// Package grid holds the conventions Vector and Matrix share: 1-based
// bounds-checked indexing, the sentinel error set and text rendering.
//
// Indexing contract:
//   - Valid positions are 1..n on every axis; 0 and anything above n fail
//     with ErrIndexOutOfBounds.
//   - Storage is a flat slice; Offset maps a 1-based (row, col) pair onto it
//     in row-major order: (row-1)*cols + (col-1).
package grid

import "math"

// CheckDims validates that every size is positive and that their product,
// the flat storage length, fits in an int.
// Complexity: O(len(sizes)).
func CheckDims(sizes ...int) error {
	total := 1
	for _, n := range sizes {
		if n <= 0 || total > math.MaxInt/n {
			return ErrInvalidDimension
		}
		total *= n
	}

	return nil
}

// CheckIndex validates a 1-based index against bound n.
// Complexity: O(1).
func CheckIndex(i, n int) error {
	if i < 1 || i > n {
		return ErrIndexOutOfBounds
	}

	return nil
}

// Offset returns the flat row-major offset of the 1-based cell (row, col)
// or ErrIndexOutOfBounds when either coordinate is outside its bound.
// Complexity: O(1).
func Offset(row, col, rows, cols int) (int, error) {
	if err := CheckIndex(row, rows); err != nil {
		return 0, err
	}
	if err := CheckIndex(col, cols); err != nil {
		return 0, err
	}

	return (row-1)*cols + (col - 1), nil
}
