package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var abilitiesCmd = &cobra.Command{
	Use:   "abilities <name-or-dex>",
	Short: "List a creature's abilities with effect text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.AbilitiesReport, error) {
			return a.assembler.Abilities(ctx, &report.AbilitiesInput{NameOrDex: args[0]})
		})
	},
}
