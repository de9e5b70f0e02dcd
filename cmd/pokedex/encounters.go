package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var encountersCmd = &cobra.Command{
	Use:   "encounters <name-or-dex>",
	Short: "List wild encounter locations for a creature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.EncountersReport, error) {
			return a.assembler.Encounters(ctx, &report.EncountersInput{NameOrDex: args[0]})
		})
	},
}
