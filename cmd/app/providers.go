package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/svatek/internal/domain/dashboard"
	"github.com/yanqian/svatek/internal/domain/nameday"
	"github.com/yanqian/svatek/internal/domain/suntimes"
	"github.com/yanqian/svatek/internal/infra/config"
	"github.com/yanqian/svatek/internal/infra/displaystore"
	"github.com/yanqian/svatek/internal/infra/refreshlog"
	"github.com/yanqian/svatek/internal/infra/sunrisesunset"
	"github.com/yanqian/svatek/internal/infra/svatky"
)

func provideNameDayConfig(cfg *config.Config) nameday.Config {
	return nameday.Config{
		SourceURL: cfg.NameDay.APIBaseURL,
	}
}

func provideNameDayClient(cfg *config.Config) *svatky.Client {
	return svatky.NewClient(cfg.NameDay.APIBaseURL, cfg.NameDay.Timeout)
}

func provideSunTimesConfig(cfg *config.Config) suntimes.Config {
	return suntimes.Config{
		Timezone:  cfg.SunTimes.Zone(),
		SourceURL: cfg.SunTimes.APIBaseURL,
	}
}

func provideSunTimesClient(cfg *config.Config) *sunrisesunset.Client {
	return sunrisesunset.NewClient(cfg.SunTimes.APIBaseURL, cfg.SunTimes.Timeout)
}

func provideDashboardConfig(cfg *config.Config) dashboard.Config {
	return dashboard.Config{
		LocationName:    cfg.Location.Name,
		LocationCaption: cfg.Location.Caption,
		Coordinates: suntimes.Coordinates{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		},
		Timezone:     cfg.SunTimes.Zone(),
		HistoryLimit: cfg.History.Limit,
	}
}

func provideStateStore(cfg *config.Config, logger *slog.Logger) dashboard.StateStore {
	if !cfg.Display.Valkey.Enabled {
		return displaystore.NewMemoryStore()
	}
	opt, err := buildValkeyOptions(cfg.Display.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return displaystore.NewMemoryStore()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return displaystore.NewMemoryStore()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return displaystore.NewMemoryStore()
	}
	logger.Info("board valkey store enabled", "addr", cfg.Display.Valkey.Addr)
	return displaystore.NewValkeyStore(client, cfg.Display.Valkey.Prefix)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

func provideRefreshLog(cfg *config.Config, logger *slog.Logger) dashboard.RefreshLog {
	fallback := refreshlog.NewMemoryLog(cfg.History.Limit)
	dsn := strings.TrimSpace(cfg.History.Postgres.DSN)
	if dsn == "" {
		logger.Info("history postgres dsn not set, using memory refresh log")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory refresh log", "error", err)
		return fallback
	}
	if cfg.History.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.History.Postgres.MaxConns
	}
	if cfg.History.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.History.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory refresh log", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory refresh log", "error", err)
		pool.Close()
		return fallback
	}
	repo := refreshlog.NewPostgresLog(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("refresh_log schema setup failed, using memory refresh log", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("history postgres refresh log enabled")
	return repo
}
