// SPDX-License-Identifier: MIT

// Package number: promotion table for heterogeneous built-in arithmetic.
//
// Purpose:
//   - Decide the result kind of T op U for built-in kinds, explicitly and in one place.
//   - Let Promoted operations reject a caller-chosen result type that the table disagrees with.
//
// Rules (applied in order):
//  1. same kind → that kind;
//  2. any float64 → float64;
//  3. float32 with an integer of width ≤ 16 → float32, with a wider integer → float64;
//  4. two signed, or two unsigned, integers → the wider of the two;
//  5. signed with unsigned → the smallest signed kind that is at least as wide
//     as the signed operand and strictly wider than the unsigned one; an
//     unsigned 64-bit operand has no such kind and promotes to float64.
//
// Notes:
//   - int, uint and uintptr count as 64-bit.
//   - Kinds are derived from the underlying type, so named types promote like
//     their underlying kind.
package number

import (
	"fmt"
	"reflect"
)

// Kind identifies a built-in numeric kind for promotion purposes.
type Kind uint8

// Kinds known to the promotion table.
const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindInvalid]
}

// IsFloat reports whether k is a float kind.
func (k Kind) IsFloat() bool { return k == KindFloat32 || k == KindFloat64 }

// IsSigned reports whether k is a signed integer kind.
func (k Kind) IsSigned() bool { return k >= KindInt8 && k <= KindInt64 }

// IsUnsigned reports whether k is an unsigned integer kind.
func (k Kind) IsUnsigned() bool { return k >= KindUint8 && k <= KindUint64 }

// Width returns the bit width of k, or 0 for KindInvalid.
func (k Kind) Width() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}

	return 0
}

// kindOfReflect maps reflect kinds onto the promotion kinds.
func kindOfReflect(k reflect.Kind) Kind {
	switch k {
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int, reflect.Int64:
		return KindInt64
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	}

	return KindInvalid
}

// KindOf returns the promotion kind of T.
func KindOf[T Primitive]() Kind {
	return kindOfReflect(reflect.TypeFor[T]().Kind())
}

// signedOfWidth returns the signed kind with exactly w bits.
func signedOfWidth(w int) Kind {
	switch w {
	case 8:
		return KindInt8
	case 16:
		return KindInt16
	case 32:
		return KindInt32
	}

	return KindInt64
}

// Promote returns the result kind of a op b under the table above.
// Complexity: O(1).
func Promote(a, b Kind) (Kind, error) {
	if a == KindInvalid || b == KindInvalid || a > KindFloat64 || b > KindFloat64 {
		return KindInvalid, fmt.Errorf("Promote(%s, %s): %w", a, b, ErrPromotion)
	}
	if a == b {
		return a, nil
	}
	if a == KindFloat64 || b == KindFloat64 {
		return KindFloat64, nil
	}
	if a == KindFloat32 || b == KindFloat32 {
		other := a
		if a == KindFloat32 {
			other = b
		}
		if other.Width() <= 16 {
			return KindFloat32, nil
		}

		return KindFloat64, nil
	}
	if a.IsSigned() == b.IsSigned() {
		if a.Width() >= b.Width() {
			return a, nil
		}

		return b, nil
	}

	s, u := a, b
	if u.IsSigned() {
		s, u = b, a
	}
	if u.Width() == 64 {
		return KindFloat64, nil
	}

	return signedOfWidth(max(s.Width(), 2*u.Width())), nil
}

// CheckPromotion verifies that V is the table's result kind for T op U.
func CheckPromotion[V, T, U Primitive]() error {
	kt, ku, kv := KindOf[T](), KindOf[U](), KindOf[V]()
	want, err := Promote(kt, ku)
	if err != nil {
		return err
	}
	if want != kv {
		return fmt.Errorf("%s op %s yields %s, not %s: %w", kt, ku, want, kv, ErrPromotion)
	}

	return nil
}
