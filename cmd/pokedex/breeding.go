package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var breedingGame string

var breedingCmd = &cobra.Command{
	Use:   "breeding <name-or-dex>",
	Short: "Show egg groups, hatch steps, gender ratio, and egg moves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.BreedingReport, error) {
			return a.assembler.BreedingInfo(ctx, &report.BreedingInput{
				NameOrDex: args[0],
				Game:      breedingGame,
			})
		})
	},
}

func init() {
	breedingCmd.Flags().StringVar(&breedingGame, "game", "", "limit egg moves to one version group")
}
