package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage <name-or-dex>...",
	Short: "Analyze defensive type coverage across a roster",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.CoverageReport, error) {
			return a.assembler.Coverage(ctx, &report.CoverageInput{NamesOrDexes: args})
		})
	},
}
