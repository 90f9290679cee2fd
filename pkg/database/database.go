package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Config содержит параметры подключения к PostgreSQL.
type Config struct {
	DSN      string
	MaxConns int32
}

// NewPgxPool создает пул соединений с PostgreSQL с ретраями: при старте в
// контейнерном окружении база может подниматься дольше сервиса.
func NewPgxPool(ctx context.Context, cfg Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("unable to parse postgres config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}

	const (
		maxRetries = 10
		retryDelay = 3 * time.Second
	)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
		if err == nil {
			err = pool.Ping(connectCtx)
			if err == nil {
				cancel()
				return pool, nil
			}
			pool.Close()
		}
		cancel()

		lastErr = err
		logger.Warn("Postgres connection failed, retrying...",
			zap.Int("attempt", attempt),
			zap.Int("maxRetries", maxRetries),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return nil, fmt.Errorf("unable to connect to postgres after %d attempts: %w", maxRetries, lastErr)
}
