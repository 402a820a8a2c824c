// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/spf13/cobra"
)

// Subcommand names.
const (
	opDot       = "dot"
	opNorm      = "norm"
	opNormalize = "normalize"
	opAdd       = "add"
	opSub       = "sub"
	opMul       = "mul"
	opScale     = "scale"

	flagOrder  = "order"
	flagScalar = "scalar"
)

func (a *app) dotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   opDot,
		Short: "Dot product of vectors a and b (lengths must match)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOp(opDot, 2, func(ops operands) error {
				x, err := ops.a.vector()
				if err != nil {
					return err
				}
				y, err := ops.b.vector()
				if err != nil {
					return err
				}
				d, err := vector.Dot(x, y)
				if err != nil {
					return err
				}

				return a.printScalar(cmd.OutOrStdout(), d)
			})
		},
	}
}

func (a *app) normCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   opNorm,
		Short: "Order-n norm of vector a: (Σ a_i^n)^(1/n)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := cmd.Flags().GetInt32(flagOrder)
			if err != nil {
				return err
			}

			return a.runOp(opNorm, 1, func(ops operands) error {
				x, err := ops.a.vector()
				if err != nil {
					return err
				}
				n, err := vector.Norm(x, order)
				if err != nil {
					return err
				}

				return a.printScalar(cmd.OutOrStdout(), n)
			})
		},
	}
	cmd.Flags().Int32P(flagOrder, "n", 2, "norm order, must be > 0")

	return cmd
}

func (a *app) normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   opNormalize,
		Short: "Scale vector a to unit Euclidean length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOp(opNormalize, 1, func(ops operands) error {
				x, err := ops.a.vector()
				if err != nil {
					return err
				}
				u, err := vector.Normalize(x)
				if err != nil {
					return err
				}

				return a.printVector(cmd.OutOrStdout(), u)
			})
		},
	}
}

// elementwiseCommand builds add/sub: vector kernels when both operands are
// single rows, matrix kernels otherwise.
func (a *app) elementwiseCommand(
	op, short string,
	vecFn func(x, y *vector.Vector[float64]) (*vector.Vector[float64], error),
	matFn func(x, y *matrix.Matrix[float64]) (*matrix.Matrix[float64], error),
) *cobra.Command {
	return &cobra.Command{
		Use:   op,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOp(op, 2, func(ops operands) error {
				if ops.a.isVector() && ops.b.isVector() {
					x, err := ops.a.vector()
					if err != nil {
						return err
					}
					y, err := ops.b.vector()
					if err != nil {
						return err
					}
					out, err := vecFn(x, y)
					if err != nil {
						return err
					}

					return a.printVector(cmd.OutOrStdout(), out)
				}
				x, y, err := bothMatrices(ops)
				if err != nil {
					return err
				}
				out, err := matFn(x, y)
				if err != nil {
					return err
				}

				return a.printMatrix(cmd.OutOrStdout(), out)
			})
		},
	}
}

func (a *app) mulCommand() *cobra.Command {
	return &cobra.Command{
		Use:   opMul,
		Short: "Matrix product a·b (a.cols must equal b.rows)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOp(opMul, 2, func(ops operands) error {
				x, y, err := bothMatrices(ops)
				if err != nil {
					return err
				}
				p, err := matrix.Mul(x, y)
				if err != nil {
					return err
				}

				return a.printMatrix(cmd.OutOrStdout(), p)
			})
		},
	}
}

func (a *app) scaleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   opScale,
		Short: "Multiply every element of a by --scalar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := cmd.Flags().GetFloat64(flagScalar)
			if err != nil {
				return err
			}

			return a.runOp(opScale, 1, func(ops operands) error {
				if ops.a.isVector() {
					x, err := ops.a.vector()
					if err != nil {
						return err
					}
					out, err := vector.Scale(s, x)
					if err != nil {
						return err
					}

					return a.printVector(cmd.OutOrStdout(), out)
				}
				x, err := ops.a.matrix()
				if err != nil {
					return err
				}
				out, err := matrix.Scale(s, x)
				if err != nil {
					return err
				}

				return a.printMatrix(cmd.OutOrStdout(), out)
			})
		},
	}
	cmd.Flags().Float64P(flagScalar, "s", 1, "scalar multiplier (left operand)")

	return cmd
}

// bothMatrices converts a and b into matrices.
func bothMatrices(ops operands) (*matrix.Matrix[float64], *matrix.Matrix[float64], error) {
	x, err := ops.a.matrix()
	if err != nil {
		return nil, nil, err
	}
	y, err := ops.b.matrix()
	if err != nil {
		return nil, nil, err
	}

	return x, y, nil
}
