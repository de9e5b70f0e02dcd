package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var evolutionsCmd = &cobra.Command{
	Use:   "evolutions <name-or-dex>",
	Short: "Show the evolution paths for a creature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.EvolutionsReport, error) {
			return a.assembler.Evolutions(ctx, &report.EvolutionsInput{NameOrDex: args[0]})
		})
	},
}
