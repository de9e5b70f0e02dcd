package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var describeLanguage string

var describeCmd = &cobra.Command{
	Use:   "describe <name-or-dex>",
	Short: "Show per-version flavor text for a creature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.DescriptionsReport, error) {
			return a.assembler.Descriptions(ctx, &report.DescriptionsInput{
				NameOrDex: args[0],
				Language:  describeLanguage,
			})
		})
	},
}

func init() {
	describeCmd.Flags().StringVar(&describeLanguage, "language", "", "flavor text language (default en)")
}
