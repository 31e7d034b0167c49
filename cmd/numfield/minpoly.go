package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/numberfield"
)

type minpolyResult struct {
	Expr    string `json:"expr"`
	Minpoly string `json:"minpoly"`
	Degree  int    `json:"degree"`
}

func newMinpolyCmd(a *app) *cobra.Command {
	var variable string

	cmd := &cobra.Command{
		Use:     "minpoly <expr>",
		Short:   "Print the minimal polynomial of an algebraic number",
		Example: `  numfield minpoly 'sqrt(2) + sqrt(3)'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := expr.Parse(args[0])
			if err != nil {
				return err
			}

			m, err := numberfield.MinimalPolynomial(e, a.conf.Kernel)
			if err != nil {
				return err
			}

			result := minpolyResult{
				Expr:    e.String(),
				Minpoly: m.Format(variable),
				Degree:  m.Degree(),
			}

			if a.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Minpoly)
			return nil
		},
	}

	cmd.Flags().StringVar(&variable, "var", "x", "variable name of the printed polynomial")

	return cmd
}
