package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/config"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/logger"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/repo"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "dashboard - inventory management over a pluggable local store",
	Long: `dashboard manages a product inventory: view, filter, sort, paginate,
create, edit, delete and export products, with a selectable display
currency. State persists across runs in a file, Redis or Postgres
backed store.`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("dashboard version {{.Version}}\n")
}

// setup loads config and initializes the process logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Service: "inventory-dashboard",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})
	return cfg, log, nil
}

// openStore builds the configured storage backend. The returned cleanup
// closes any underlying connections.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	noop := func() {}
	switch cfg.Storage {
	case config.StorageMemory:
		return store.NewMemoryStore(), noop, nil
	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("could not connect to Redis: %w", err)
		}
		return store.NewRedisStore(rdb), func() { rdb.Close() }, nil
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to Postgres: %w", err)
		}
		st, err := store.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return st, pool.Close, nil
	default:
		st, err := store.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return st, noop, nil
	}
}

type repos struct {
	products *repo.ProductRepository
	filters  *repo.FilterRepository
	currency *repo.CurrencyRepository
}

func buildRepos(ctx context.Context, st store.Store, log *slog.Logger) repos {
	return repos{
		products: repo.NewProductRepository(ctx, st, log),
		filters:  repo.NewFilterRepository(ctx, st, log),
		currency: repo.NewCurrencyRepository(ctx, st, log),
	}
}
