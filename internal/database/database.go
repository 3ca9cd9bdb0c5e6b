package database

import (
	"context"
	"fmt"
	"time"

	"vocab-builder/internal/config"
	"vocab-builder/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// NewSQLXDB opens a connection pool for the configured driver and verifies it with a ping.
func NewSQLXDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	dialect, err := DialectFor(cfg.DB.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(dialect.DriverName(), cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dialect.DriverName(), err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dialect.DriverName(), err)
	}

	if err := dialect.Configure(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure %s connection: %w", dialect.DriverName(), err)
	}

	logger.Get().Info("Database connection established", zap.String("driver", dialect.DriverName()))
	return db, nil
}
