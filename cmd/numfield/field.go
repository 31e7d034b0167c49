package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vitalvas/numfield/domain"
)

type fieldResult struct {
	Field      string            `json:"field"`
	Degree     int               `json:"degree"`
	Minpoly    string            `json:"minpoly"`
	Hash       string            `json:"hash"`
	Generators []generatorResult `json:"generators"`
}

type generatorResult struct {
	Expr   string `json:"expr"`
	Coords string `json:"coords"`
}

func newFieldCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "field <generator>...",
		Short: "Construct QQ(generators) and print its primitive element",
		Example: `  numfield field 'sqrt(2)' 'sqrt(3)'
  numfield field --json '2**(1/3)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exts, err := parseExprs(args)
			if err != nil {
				return err
			}

			f, err := a.cache.Get(cmd.Context(), domain.QQ, exts...)
			if err != nil {
				return err
			}

			result := fieldResult{
				Field:   f.String(),
				Degree:  f.Degree(),
				Minpoly: f.Minpoly().String(),
				Hash:    strconv.FormatUint(f.Hash(), 16),
			}
			for _, g := range f.Gens() {
				coords, err := f.ConvertExpr(g)
				if err != nil {
					return err
				}
				result.Generators = append(result.Generators, generatorResult{
					Expr:   g.String(),
					Coords: coords.String(),
				})
			}

			out := cmd.OutOrStdout()
			if a.json {
				return writeJSON(out, result)
			}

			fmt.Fprintf(out, "field:    %s\n", result.Field)
			fmt.Fprintf(out, "degree:   %d\n", result.Degree)
			fmt.Fprintf(out, "minpoly:  %s\n", result.Minpoly)
			for _, g := range result.Generators {
				fmt.Fprintf(out, "%s = %s\n", g.Expr, g.Coords)
			}
			return nil
		},
	}
}
