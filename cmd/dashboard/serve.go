package main

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	api "github.com/ROKU24/Inventory-Management-Dashboard/internal/http"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/http/handlers"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/http/ratelimit"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/report"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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
	handlers.SetProductRepo(rs.products)
	handlers.SetFilterRepo(rs.filters)
	handlers.SetCurrencyRepo(rs.currency)
	handlers.SetNotifier(report.LogNotifier{Log: log})

	go ratelimit.StartCleanupLoop()

	r := api.NewRouter()
	log.Info("server running", "addr", cfg.Addr, "storage", cfg.Storage)
	return http.ListenAndServe(cfg.Addr, r)
}
