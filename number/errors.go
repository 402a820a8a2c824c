// SPDX-License-Identifier: MIT

// Package number: sentinel error set.
// Both sentinels are configuration errors: they signal that a type argument
// cannot serve the requested role, never a data-dependent failure.
package number

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrMissingCapability is returned when a type argument has no witness
	// for a required capability.
	ErrMissingCapability = errors.New("number: missing capability")

	// ErrPromotion is returned when a requested result kind disagrees with
	// the promotion table, or an operand kind has no table entry.
	ErrPromotion = errors.New("number: invalid promotion")
)

// Capability names used in CapabilityError.
const (
	CapNumber    = "Number"
	CapInteger   = "Integer"
	CapField     = "Field"
	CapRealField = "RealField"
)

// CapabilityError reports which type lacks which capability.
// It matches ErrMissingCapability under errors.Is.
type CapabilityError struct {
	Type       string // Go type name, e.g. "string" or "main.Money"
	Capability string // one of the Cap* constants
}

// Error implements error.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s does not provide %s", ErrMissingCapability, e.Type, e.Capability)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *CapabilityError) Unwrap() error { return ErrMissingCapability }

// missing builds a CapabilityError for T.
func missing[T any](capability string) error {
	return &CapabilityError{Type: reflect.TypeFor[T]().String(), Capability: capability}
}
