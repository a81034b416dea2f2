package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetFilters bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in seed products",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetFilters, "filters", false, "also clear the active filters")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	rs := buildRepos(ctx, st, log)
	rs.products.ResetToDefault(ctx)
	if resetFilters {
		rs.filters.ResetFilters(ctx)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "restored %d seed products\n", len(rs.products.All()))
	return nil
}
