// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/linalg/gonumconv"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// app carries the per-invocation state shared by all subcommands.
type app struct {
	cfg Config
	log *zap.Logger
}

// NewRootCommand builds the linalg command tree. Every call returns an
// independent tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Vector and matrix arithmetic from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	addGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		a.dotCommand(),
		a.normCommand(),
		a.normalizeCommand(),
		a.elementwiseCommand(opAdd, "Element-wise sum of a and b", vector.Add[float64], matrix.Add[float64]),
		a.elementwiseCommand(opSub, "Element-wise difference a - b", vector.Sub[float64], matrix.Sub[float64]),
		a.mulCommand(),
		a.scaleCommand(),
	)

	return root
}

// setup resolves configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration resolved",
		zap.String("config", v.ConfigFileUsed()),
		zap.Int(keyPrecision, cfg.Precision),
		zap.Bool(keyPretty, cfg.Pretty),
		zap.String(keyFile, cfg.File))

	return nil
}

// runOp resolves operands, runs fn and logs the outcome.
func (a *app) runOp(op string, need int, fn func(ops operands) error) error {
	ops, err := resolveOperands(a.cfg)
	if err == nil {
		err = ops.need(need)
	}
	if err == nil {
		err = fn(ops)
	}
	if err != nil {
		a.log.Error("operation failed", zap.String("op", op), zap.Error(err))

		return fmt.Errorf("%s: %w", op, err)
	}
	a.log.Info("operation completed", zap.String("op", op))

	return nil
}

// printScalar writes x honoring the precision setting.
func (a *app) printScalar(w io.Writer, x float64) error {
	s := strconv.FormatFloat(x, 'g', -1, 64)
	if a.cfg.Precision >= 0 {
		s = strconv.FormatFloat(x, 'f', a.cfg.Precision, 64)
	}
	_, err := fmt.Fprintln(w, s)

	return err
}

// printVector writes v on one line.
func (a *app) printVector(w io.Writer, v *vector.Vector[float64]) error {
	_, err := fmt.Fprintln(w, v.Format(vector.WithPrecision(a.cfg.Precision)))

	return err
}

// printMatrix writes m row by row, or through mat.Formatted with --pretty.
func (a *app) printMatrix(w io.Writer, m *matrix.Matrix[float64]) error {
	if !a.cfg.Pretty {
		_, err := fmt.Fprintln(w, m.Format(matrix.WithPrecision(a.cfg.Precision)))

		return err
	}
	view, err := gonumconv.NewView(m)
	if err != nil {
		return err
	}
	if a.cfg.Precision >= 0 {
		_, err = fmt.Fprintf(w, "%.*f\n", a.cfg.Precision, mat.Formatted(view, mat.Squeeze()))
	} else {
		_, err = fmt.Fprintf(w, "%v\n", mat.Formatted(view, mat.Squeeze()))
	}

	return err
}
