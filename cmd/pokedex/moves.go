package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var movesCmd = &cobra.Command{
	Use:   "moves <name-or-dex> <game>",
	Short: "List the full learnset for a creature in a specific game",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.MovesReport, error) {
			return a.assembler.Moves(ctx, &report.MovesInput{
				NameOrDex: args[0],
				Game:      args[1],
			})
		})
	},
}
