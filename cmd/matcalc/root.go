// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cofactor/internal/gridfile"
	"github.com/katalvlaran/cofactor/matrix"
)

// settings holds the flag values shared by every subcommand.
type settings struct {
	pretty    bool
	precision int
	allowInf  bool
	left      string
	right     string
	factor    float64
}

func newRootCmd() *cobra.Command {
	s := &settings{}

	root := &cobra.Command{
		Use:          "matcalc",
		Short:        "dense matrix calculator",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&s.pretty, "pretty", false, "render matrices as a bordered table")
	root.PersistentFlags().IntVar(&s.precision, "precision", -1, "digits after the decimal point (-1 = shortest exact)")
	root.PersistentFlags().BoolVar(&s.allowInf, "allow-inf", false, "accept NaN and ±Inf cells in input files")

	root.AddCommand(
		scalarCmd(s, "det", "determinant by cofactor expansion", matrix.Determinant),
		scalarCmd(s, "trace", "sum of the main diagonal", matrix.Trace),
		unaryCmd(s, "inverse", "inverse of a non-singular square matrix", matrix.Inverse),
		unaryCmd(s, "transpose", "swap rows and columns", matrix.Transpose),
		unaryCmd(s, "cofactors", "matrix of cofactors", matrix.Cofactors),
		unaryCmd(s, "adjugate", "transpose of the matrix of cofactors", matrix.Adjugate),
		unaryCmd(s, "neg", "negate every element", matrix.Negate),
		scaleCmd(s),
		binaryCmd(s, "add", "elementwise sum", matrix.Add),
		binaryCmd(s, "sub", "elementwise difference", matrix.Sub),
		binaryCmd(s, "mul", "matrix product (m×n · n×p)", matrix.Mul),
	)

	return root
}

func (s *settings) options() []matrix.Option {
	if s.allowInf {
		return []matrix.Option{matrix.WithNoValidateNaNInf()}
	}

	return nil
}

func (s *settings) load(path string) (*matrix.Dense, error) {
	return gridfile.Load(path, s.options()...)
}

func addLeftFlag(cmd *cobra.Command, s *settings) {
	cmd.Flags().StringVarP(&s.left, "file", "f", "", "input grid (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("file")
}

func scalarCmd(s *settings, use, short string, op func(matrix.Matrix) (float64, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := s.load(s.left)
			if err != nil {
				return err
			}
			v, err := op(m)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatCell(v, s.precision))

			return err
		},
	}
	addLeftFlag(cmd, s)

	return cmd
}

func unaryCmd(s *settings, use, short string, op func(matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := s.load(s.left)
			if err != nil {
				return err
			}
			res, err := op(m)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), res, s.pretty, s.precision)
		},
	}
	addLeftFlag(cmd, s)

	return cmd
}

func scaleCmd(s *settings) *cobra.Command {
	cmd := unaryCmd(s, "scale", "multiply every element by -k", func(m matrix.Matrix) (*matrix.Dense, error) {
		return matrix.Scale(s.factor, m)
	})
	cmd.Flags().Float64VarP(&s.factor, "factor", "k", 1, "scalar multiplier")

	return cmd
}

func binaryCmd(s *settings, use, short string, op func(a, b matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := s.load(s.left)
			if err != nil {
				return err
			}
			b, err := s.load(s.right)
			if err != nil {
				return err
			}
			res, err := op(a, b)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), res, s.pretty, s.precision)
		},
	}
	addLeftFlag(cmd, s)
	cmd.Flags().StringVarP(&s.right, "with", "g", "", "second input grid (.yaml, .yml or .toml)")
	_ = cmd.MarkFlagRequired("with")

	return cmd
}
