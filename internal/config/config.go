// Package config loads runtime settings from DASHBOARD_* environment
// variables and an optional config.yaml in the working directory.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Storage backend names.
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type Config struct {
	Addr        string
	Env         string
	LogLevel    string
	Storage     string
	DataDir     string
	RedisAddr   string
	PostgresURL string
}

// Load reads the configuration, applying defaults for anything unset. A
// missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("storage", StorageFile)
	v.SetDefault("data_dir", "data")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("postgres_url", "")

	v.SetEnvPrefix("DASHBOARD")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		Addr:        v.GetString("addr"),
		Env:         v.GetString("env"),
		LogLevel:    v.GetString("log_level"),
		Storage:     v.GetString("storage"),
		DataDir:     v.GetString("data_dir"),
		RedisAddr:   v.GetString("redis_addr"),
		PostgresURL: v.GetString("postgres_url"),
	}

	switch cfg.Storage {
	case StorageFile, StorageMemory, StorageRedis, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	if cfg.Storage == StoragePostgres && cfg.PostgresURL == "" {
		return Config{}, errors.New("postgres storage requires postgres_url")
	}
	return cfg, nil
}
