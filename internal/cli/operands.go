// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"gopkg.in/yaml.v3"
)

// ErrMissingOperand is returned when a command needs an operand that was
// given neither as a flag nor in the operand file.
var ErrMissingOperand = errors.New("linalg: missing operand")

// Operand is one numeric input. Rows <= 1 marks a vector; Cols == 0 is
// derived from len(Values)/Rows.
type Operand struct {
	Rows   int       `yaml:"rows,omitempty"`
	Cols   int       `yaml:"cols,omitempty"`
	Values []float64 `yaml:"values"`
}

// operandFile is the --file layout:
//
//	a: {rows: 2, cols: 2, values: [1, 2, 3, 4]}
//	b: {values: [5, 6]}
type operandFile struct {
	A *Operand `yaml:"a"`
	B *Operand `yaml:"b"`
}

// isVector reports whether the operand is a single row.
func (o *Operand) isVector() bool { return o.Rows <= 1 }

// vector converts the operand values into a vector.
func (o *Operand) vector() (*vector.Vector[float64], error) {
	return vector.FromSlice[float64](o.Values)
}

// matrix converts the operand into a rows×cols matrix.
func (o *Operand) matrix() (*matrix.Matrix[float64], error) {
	rows, cols := o.Rows, o.Cols
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = len(o.Values) / rows
	}

	return matrix.FromSlice(rows, cols, o.Values)
}

// parseOperand parses "1,2;3,4": cells split by ',' and rows by ';'.
// Each row is decoded as a YAML flow sequence.
func parseOperand(s string) (*Operand, error) {
	lines := strings.Split(s, ";")
	op := &Operand{Rows: len(lines)}
	for i, line := range lines {
		var row []float64
		if err := yaml.Unmarshal([]byte("["+line+"]"), &row); err != nil {
			return nil, fmt.Errorf("row %d %q: %w", i+1, line, err)
		}
		if i == 0 {
			op.Cols = len(row)
		} else if len(row) != op.Cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i+1, len(row), op.Cols, matrix.ErrDimensionMismatch)
		}
		op.Values = append(op.Values, row...)
	}

	return op, nil
}

// loadOperandFile decodes path strictly: unknown keys are rejected.
func loadOperandFile(path string) (*operandFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read operands: %w", err)
	}
	var f operandFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &f, nil
}

// operands holds the resolved inputs of one command.
type operands struct {
	a, b *Operand
}

// resolveOperands merges the operand file with the flags; flags win.
func resolveOperands(cfg Config) (operands, error) {
	var ops operands
	if cfg.File != "" {
		f, err := loadOperandFile(cfg.File)
		if err != nil {
			return ops, err
		}
		ops.a, ops.b = f.A, f.B
	}
	for _, src := range []struct {
		flag string
		dst  **Operand
	}{{cfg.A, &ops.a}, {cfg.B, &ops.b}} {
		if src.flag == "" {
			continue
		}
		op, err := parseOperand(src.flag)
		if err != nil {
			return ops, err
		}
		*src.dst = op
	}

	return ops, nil
}

// need fails with ErrMissingOperand unless the first n operands are set.
func (ops operands) need(n int) error {
	if ops.a == nil {
		return fmt.Errorf("a: %w", ErrMissingOperand)
	}
	if n > 1 && ops.b == nil {
		return fmt.Errorf("b: %w", ErrMissingOperand)
	}

	return nil
}
