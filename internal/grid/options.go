// SPDX-License-Identifier: MIT

// Package grid: functional configuration for text rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator separates elements inside a vector or a matrix row.
	DefaultSeparator = " "

	// DefaultRowSeparator separates matrix rows.
	DefaultRowSeparator = "\n"

	// DefaultPrecision keeps the %v rendering of floats. A value >= 0 renders
	// float32/float64 elements with that many decimals.
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "grid: WithPrecision: precision must be >= -1"
	panicSeparatorEmpty   = "grid: WithSeparator: separator must not be empty"
)

// Option mutates rendering options.
type Option func(*Options)

// Options stores the effective rendering configuration.
type Options struct {
	sep       string // DefaultSeparator
	rowSep    string // DefaultRowSeparator
	precision int    // DefaultPrecision
}

// WithSeparator sets the element separator. Panics on an empty separator.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *Options) { o.sep = sep }
}

// WithRowSeparator sets the separator placed between matrix rows.
// An empty value renders all rows on one line joined by the element separator.
func WithRowSeparator(sep string) Option {
	return func(o *Options) { o.rowSep = sep }
}

// WithPrecision sets the number of decimals for float elements.
// -1 restores %v rendering. Panics when p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		sep:       DefaultSeparator,
		rowSep:    DefaultRowSeparator,
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// formatElem renders a single element under o.
func formatElem(v any, o Options) string {
	if o.precision >= 0 {
		switch f := v.(type) {
		case float64:
			return strconv.FormatFloat(f, 'f', o.precision, 64)
		case float32:
			return strconv.FormatFloat(float64(f), 'f', o.precision, 32)
		}
	}

	return fmt.Sprint(v)
}

// writeRow appends vals joined by the element separator.
func writeRow[T any](b *strings.Builder, vals []T, o Options) {
	for j, v := range vals {
		if j > 0 {
			b.WriteString(o.sep)
		}
		b.WriteString(formatElem(v, o))
	}
}

// Render returns vals as a separator-joined list.
// Complexity: O(n).
func Render[T any](vals []T, opts ...Option) string {
	o := gatherOptions(opts...)
	var b strings.Builder
	writeRow(&b, vals, o)

	return b.String()
}

// RenderRows renders a row-major buffer of rows of width cols.
// Rows are joined by the row separator; with an empty row separator they are
// joined by the element separator instead.
// Complexity: O(len(vals)).
func RenderRows[T any](vals []T, cols int, opts ...Option) string {
	o := gatherOptions(opts...)
	rowSep := o.rowSep
	if rowSep == "" {
		rowSep = o.sep
	}

	var b strings.Builder
	for base := 0; base+cols <= len(vals) && cols > 0; base += cols {
		if base > 0 {
			b.WriteString(rowSep)
		}
		writeRow(&b, vals[base:base+cols], o)
	}

	return b.String()
}
