// Package main is the pokedex command line entry point: one subcommand per
// analytical operation, each printing a JSON report to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "pokedex",
	Short:         "Creature lookups and team analysis from PokeAPI data",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		summaryCmd,
		describeCmd,
		abilitiesCmd,
		movesCmd,
		movesetCmd,
		coverageCmd,
		evolutionsCmd,
		encountersCmd,
		breedingCmd,
	)
}
