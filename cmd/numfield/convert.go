package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vitalvas/numfield/domain"
	"github.com/vitalvas/numfield/xcmd"
)

type convertResult struct {
	Expr   string `json:"expr"`
	Coords string `json:"coords"`
	Value  string `json:"value"`
	Approx string `json:"approx,omitempty"`
}

func newConvertCmd(a *app) *cobra.Command {
	var exts []string

	cmd := &cobra.Command{
		Use:   "convert --ext <generator> <expr>...",
		Short: "Express numbers as coordinates in QQ(generators)",
		Example: `  numfield convert --ext 'sqrt(2)' 'sqrt(8)' '1/2'
  numfield convert --ext 'sqrt(2)' --ext 'sqrt(3)' 'sqrt(6)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(exts) == 0 {
				return errors.New("at least one --ext generator is required")
			}

			gens, err := parseExprs(exts)
			if err != nil {
				return err
			}
			values, err := parseExprs(args)
			if err != nil {
				return err
			}

			f, err := a.cache.Get(cmd.Context(), domain.QQ, gens...)
			if err != nil {
				return err
			}

			results := make([]convertResult, len(values))

			group, _ := xcmd.ErrGroup(cmd.Context())
			group.SetLimit(runtime.GOMAXPROCS(0))

			for i, v := range values {
				i, v := i, v
				group.Go(func(ctx context.Context) error {
					if err := ctx.Err(); err != nil {
						return err
					}

					coords, err := f.ConvertExpr(v)
					if err != nil {
						return err
					}

					value := f.ToExpr(coords)
					results[i] = convertResult{
						Expr:   v.String(),
						Coords: coords.String(),
						Value:  value.String(),
						Approx: approx(value),
					}
					return nil
				})
			}

			if err := group.Wait(); err != nil {
				return err
			}

			a.logger.Info("converted", "field", f.String(), "count", len(results))

			out := cmd.OutOrStdout()
			if a.json {
				return writeJSON(out, results)
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s = %s = %s\n", r.Expr, r.Coords, r.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&exts, "ext", "e", nil, "field generator, repeatable")

	return cmd
}
