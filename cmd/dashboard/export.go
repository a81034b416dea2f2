package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/query"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/report"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the PDF inventory report for the persisted filter state",
	Long: `Runs the filter/sort pipeline over the persisted state and writes
the PDF report without starting a server. The output defaults to the
report's own download name in the working directory.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: report name)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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
	state := rs.filters.State()
	products := rs.products.All()

	gen := report.Generator{
		Currency: rs.currency.Current(),
		Filter:   state,
		Products: query.Filtered(products, state),
		Counts:   query.CategoryCounts(products),
		Chart:    report.BarChartRenderer{},
		Notifier: report.LogNotifier{Log: log},
		Now:      time.Now(),
	}

	out := exportOutput
	if out == "" {
		out = gen.Filename()
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := gen.Generate(f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d products)\n", out, len(gen.Products))
	return nil
}
