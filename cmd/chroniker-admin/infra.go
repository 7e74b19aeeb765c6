package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/target/chroniker-go/config"
	"github.com/target/chroniker-go/internal/bootstrap"
)

// monitorInfra holds the connections a check-monitor run uses. Redis is optional.
type monitorInfra struct {
	DB    *sql.DB
	Redis *redis.Client
}

// connectInfra opens Postgres and, when wanted and configured, Redis.
// A Redis failure only disables the result cache.
func connectInfra(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig, wantRedis bool) (*monitorInfra, error) {
	db, err := bootstrap.ConnectDB(ctx, bootstrap.DatabaseConfig{DBConfig: cfg.Postgres, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	infra := &monitorInfra{DB: db}

	if !wantRedis {
		return infra, nil
	}
	if !cfg.Redis.Configured() {
		logger.DebugContext(ctx, "no redis configuration detected; monitor result cache disabled")
		return infra, nil
	}

	client, err := bootstrap.ConnectRedis(ctx, bootstrap.DatabaseConfig{RedisConfig: cfg.Redis, Logger: logger})
	if err != nil {
		logger.WarnContext(ctx, "redis unavailable; monitor result cache disabled", "error", err)
		return infra, nil
	}
	infra.Redis = client
	return infra, nil
}

// Close releases every open connection.
func (i *monitorInfra) Close() error {
	if i == nil {
		return nil
	}
	var closeErr error
	if i.DB != nil {
		if err := i.DB.Close(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("close db: %w", err))
		}
	}
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("close redis: %w", err))
		}
	}
	return closeErr
}
