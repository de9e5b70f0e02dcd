package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlvn23/pokedex/pkg/report"
)

var (
	movesetLimit          int
	movesetIncludeMachine bool
)

var movesetCmd = &cobra.Command{
	Use:   "moveset <name-or-dex> <game>",
	Short: "Recommend a moveset for a creature in a specific game",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), func(ctx context.Context, a *app) (*report.MovesetReport, error) {
			return a.assembler.Moveset(ctx, &report.MovesetInput{
				NameOrDex:      args[0],
				Game:           args[1],
				Limit:          movesetLimit,
				IncludeMachine: movesetIncludeMachine,
			})
		})
	},
}

func init() {
	movesetCmd.Flags().IntVar(&movesetLimit, "limit", 4, "maximum number of moves to recommend")
	movesetCmd.Flags().BoolVar(&movesetIncludeMachine, "include-tm", false,
		"include machine-taught moves in the candidate pool")
}
