// SPDX-License-Identifier: MIT

// Package number: construction-time capability lookup.
//
// Purpose:
//   - Resolve a witness for an arbitrary type argument when the caller cannot
//     express the capability statically (e.g. a container generic over any T).
//   - Fail fast with a typed configuration error instead of misbehaving later.
//
// Resolution order:
//  1. exact built-in kinds → Int[T] / Real[T];
//  2. types implementing the self-method form of exactly that capability
//     (NumberElement, Element, IntegerElement, FloatElement);
//  3. otherwise *CapabilityError wrapping ErrMissingCapability.
//
// Notes:
//   - Named types over a built-in kind (type Celsius float64) are NOT resolved
//     here; pass Real[Celsius]{} directly, the type set accepts them.
package number

// NumberElement is the self-method form of Number.
// Zero and One are invoked on the zero value of T.
type NumberElement[T any] interface {
	Zero() T
	One() T
}

// Element is the self-method form of Field for user-defined types.
type Element[T any] interface {
	NumberElement[T]
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
}

// IntegerElement is the self-method form of Integer. It does not require
// the arithmetic of Element.
type IntegerElement[T any] interface {
	NumberElement[T]
	Pow(uint32) T
}

// FloatElement is the self-method form of RealField.
type FloatElement[T any] interface {
	Element[T]
	Powi(int32) T
	Powf(float64) T
	Sqrt() T
}

// The adapters below serve a T already verified by the matching *Of
// resolver; the assertions inside them cannot fail afterwards.

type selfNumber[T any] struct{}

func (selfNumber[T]) Zero() T { var z T; return any(z).(NumberElement[T]).Zero() }
func (selfNumber[T]) One() T  { var z T; return any(z).(NumberElement[T]).One() }

type selfField[T any] struct{ selfNumber[T] }

func el[T any](x T) Element[T] { return any(x).(Element[T]) }

func (selfField[T]) Add(a, b T) T { return el(a).Add(b) }
func (selfField[T]) Sub(a, b T) T { return el(a).Sub(b) }
func (selfField[T]) Mul(a, b T) T { return el(a).Mul(b) }
func (selfField[T]) Div(a, b T) T { return el(a).Div(b) }

type selfInteger[T any] struct{ selfNumber[T] }

func (selfInteger[T]) Pow(x T, exp uint32) T { return any(x).(IntegerElement[T]).Pow(exp) }

type selfReal[T any] struct{ selfField[T] }

func (selfReal[T]) Powi(x T, exp int32) T   { return any(x).(FloatElement[T]).Powi(exp) }
func (selfReal[T]) Powf(x T, exp float64) T { return any(x).(FloatElement[T]).Powf(exp) }
func (selfReal[T]) Sqrt(x T) T              { return any(x).(FloatElement[T]).Sqrt() }

// builtin returns the canonical witness for an exact built-in kind, or nil.
func builtin(v any) any {
	switch v.(type) {
	case int:
		return Int[int]{}
	case int8:
		return Int[int8]{}
	case int16:
		return Int[int16]{}
	case int32:
		return Int[int32]{}
	case int64:
		return Int[int64]{}
	case uint:
		return Int[uint]{}
	case uint8:
		return Int[uint8]{}
	case uint16:
		return Int[uint16]{}
	case uint32:
		return Int[uint32]{}
	case uint64:
		return Int[uint64]{}
	case uintptr:
		return Int[uintptr]{}
	case float32:
		return Real[float32]{}
	case float64:
		return Real[float64]{}
	}

	return nil
}

// NumberOf resolves the Number witness for T.
func NumberOf[T any]() (Number[T], error) {
	var zero T
	if w, ok := builtin(zero).(Number[T]); ok {
		return w, nil
	}
	if _, ok := any(zero).(NumberElement[T]); ok {
		return selfNumber[T]{}, nil
	}

	return nil, missing[T](CapNumber)
}

// FieldOf resolves the Field witness for T.
func FieldOf[T any]() (Field[T], error) {
	var zero T
	if w, ok := builtin(zero).(Field[T]); ok {
		return w, nil
	}
	if _, ok := any(zero).(Element[T]); ok {
		return selfField[T]{}, nil
	}

	return nil, missing[T](CapField)
}

// IntegerOf resolves the Integer witness for T.
// Built-in floats do not qualify.
func IntegerOf[T any]() (Integer[T], error) {
	var zero T
	if w, ok := builtin(zero).(Integer[T]); ok {
		return w, nil
	}
	if _, ok := any(zero).(IntegerElement[T]); ok {
		return selfInteger[T]{}, nil
	}

	return nil, missing[T](CapInteger)
}

// RealFieldOf resolves the RealField witness for T.
// Built-in integers do not qualify.
func RealFieldOf[T any]() (RealField[T], error) {
	var zero T
	if w, ok := builtin(zero).(RealField[T]); ok {
		return w, nil
	}
	if _, ok := any(zero).(FloatElement[T]); ok {
		return selfReal[T]{}, nil
	}

	return nil, missing[T](CapRealField)
}
