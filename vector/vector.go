// SPDX-License-Identifier: MIT

// Package vector - storage, constructors and safe 1-based accessors.
//
// Purpose:
//   - Own a fixed-length buffer exclusively; never alias caller slices.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep fixed loop orders (generators run for i = 1..dims, increasing).
//
// Complexity quicksheet:
//   - New/Repeat/FromSlice: O(n); At/Set/Dims: O(1); Clone/Values: O(n).
package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/internal/grid"
	"github.com/katalvlaran/linalg/number"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxRepeat    = "Repeat"
	ctxFromSlice = "FromSlice"
	ctxAt        = "At"
	ctxSet       = "Set"
)

// vectorErrorf attaches method context and the offending index to a sentinel.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// FormatOption configures Format. See WithSeparator and WithPrecision.
type FormatOption = grid.Option

// Rendering options shared with matrix.Format.
var (
	WithSeparator = grid.WithSeparator
	WithPrecision = grid.WithPrecision
)

// Vector is an ordered, fixed-length, 1-indexed sequence of T.
//   - dims is the length, always > 0 for a constructed vector.
//   - vals is exclusively owned storage (len == dims).
//
// A Vector is safe for concurrent readers once constructed; Set requires
// exclusive access.
type Vector[T any] struct {
	dims int
	vals []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New builds a vector of length dims by calling gen(i) for i = 1..dims in
// increasing order.
//
// Errors:
//   - ErrInvalidDimension if dims <= 0 (gen is never called).
//
// Complexity: O(dims) calls to gen.
func New[T any](dims int, gen func(i int) T) (*Vector[T], error) {
	if err := grid.CheckDims(dims); err != nil {
		return nil, vectorErrorf(ctxNew, dims, err)
	}
	vals := make([]T, dims)
	for i := 1; i <= dims; i++ {
		vals[i-1] = gen(i)
	}

	return &Vector[T]{dims: dims, vals: vals}, nil
}

// Repeat builds a vector of length dims where every slot holds value.
//
// Errors:
//   - ErrInvalidDimension if dims <= 0.
func Repeat[T any](value T, dims int) (*Vector[T], error) {
	if err := grid.CheckDims(dims); err != nil {
		return nil, vectorErrorf(ctxRepeat, dims, err)
	}

	return New(dims, func(int) T { return value })
}

// FromSlice builds a vector from vals, explicitly converting every element
// from S to T (the conversion is not assumed to be the identity).
// dims = len(vals); the caller's slice is not retained.
//
// Errors:
//   - ErrInvalidDimension if vals is empty.
func FromSlice[T, S number.Primitive](vals []S) (*Vector[T], error) {
	return FromSliceFunc(vals, func(s S) T { return T(s) })
}

// FromSliceFunc is FromSlice for arbitrary types with a caller-supplied
// conversion.
func FromSliceFunc[T, S any](vals []S, conv func(S) T) (*Vector[T], error) {
	if err := grid.CheckDims(len(vals)); err != nil {
		return nil, vectorErrorf(ctxFromSlice, len(vals), err)
	}

	return New(len(vals), func(i int) T { return conv(vals[i-1]) })
}

// Of copies vals into a new vector without conversion.
func Of[T any](vals ...T) (*Vector[T], error) {
	return FromSliceFunc(vals, func(v T) T { return v })
}

// Dims returns the vector length.
func (v *Vector[T]) Dims() int {
	if v == nil {
		return 0
	}

	return v.dims
}

// At returns the element at 1-based index i.
//
// Errors:
//   - ErrIndexOutOfBounds if i == 0 or i > Dims().
//   - ErrNilVector on a nil receiver.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if v == nil {
		return zero, vectorErrorf(ctxAt, i, ErrNilVector)
	}
	if err := grid.CheckIndex(i, v.dims); err != nil {
		return zero, vectorErrorf(ctxAt, i, err)
	}

	return v.vals[i-1], nil
}

// Set assigns x at 1-based index i. This is the only mutating operation.
//
// Errors:
//   - ErrIndexOutOfBounds if i == 0 or i > Dims().
//   - ErrNilVector on a nil receiver.
func (v *Vector[T]) Set(i int, x T) error {
	if v == nil {
		return vectorErrorf(ctxSet, i, ErrNilVector)
	}
	if err := grid.CheckIndex(i, v.dims); err != nil {
		return vectorErrorf(ctxSet, i, err)
	}
	v.vals[i-1] = x

	return nil
}

// Values returns a copy of the elements in index order.
func (v *Vector[T]) Values() []T {
	if v == nil {
		return nil
	}
	out := make([]T, v.dims)
	copy(out, v.vals)

	return out
}

// Clone returns a deep copy; the result shares no storage with v.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}

	return &Vector[T]{dims: v.dims, vals: v.Values()}
}

// String renders the elements as a space-separated list.
func (v *Vector[T]) String() string {
	return v.Format()
}

// Format renders the elements with the given options.
func (v *Vector[T]) Format(opts ...FormatOption) string {
	if v == nil {
		return "<nil>"
	}

	return grid.Render(v.vals, opts...)
}

// Equal reports whether a and b have the same length and elements.
// Two nil vectors are equal.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.dims != b.dims {
		return false
	}
	for i := range a.vals {
		if a.vals[i] != b.vals[i] {
			return false
		}
	}

	return true
}

// Map returns a new vector with fn applied to every element in index order.
func Map[T, V any](v *Vector[T], fn func(T) V) (*Vector[V], error) {
	if v == nil {
		return nil, grid.Errorf(opMap, ErrNilVector)
	}

	return New(v.dims, func(i int) V { return fn(v.vals[i-1]) })
}
