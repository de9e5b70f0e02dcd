package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <name-or-dex>",
	Short: "Show base stats, typing, and measurements for a creature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.Summary, error) {
			return a.assembler.Summary(ctx, &report.SummaryInput{NameOrDex: args[0]})
		})
	},
}
