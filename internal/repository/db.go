package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver
	_ "modernc.org/sqlite"             // sqlite driver

	"github.com/okafor-chidi/catalog-digitizer/internal/common"
)

// InMemoryDSN opens a private in-memory SQLite database shared across the
// pool's connections.
const InMemoryDSN = "file::memory:?mode=memory&cache=shared"

// DriverFor picks the database/sql driver by DSN scheme: postgres URLs go
// through pgx, everything else is treated as a SQLite path.
func DriverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// Open connects per the config and verifies the connection with a ping.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	driver := DriverFor(cfg.DSN)
	logger.Info("connecting to database", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, common.WrapError(err, "open database")
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		logger.Error("failed to connect to database", "error", err)
		return nil, common.WrapError(err, "ping database")
	}

	logger.Info("successfully connected to database")
	return db, nil
}

// HealthCheck pings the database to catch DSN issues early.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		return common.NewAppError("DB_PING", "database unreachable", err)
	}
	logger.Debug("database ping successful")
	return nil
}

// Close closes the database connection gracefully
func Close(db *sql.DB, logger *slog.Logger) {
	logger.Info("closing database connection")
	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
}
