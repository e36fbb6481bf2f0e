package workspace_db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fieldboard/config"
	"fieldboard/utils/logger"
)

// InitPool opens the connection pool for the workspace store and verifies it
// with a ping.
func InitPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d connect_timeout=%d",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.MaxConnections,
		int(cfg.Database.ConnectTimeout.Seconds()),
	)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to create database pool", "error", err)
		return nil, fmt.Errorf("create database pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.SafeErrorContext(ctx, "failed to ping database", "error", err)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.SafeInfoContext(ctx, "connected to database",
		"host", cfg.Database.Host,
		"database", cfg.Database.Name,
	)
	return pool, nil
}
