// Package database opens the SQL handle backing the record sources and waits
// for the store to accept connections before handing it out.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"worldpop/internal/platform/config"
)

const pingTimeout = 3 * time.Second

// Pinger is the part of *sql.DB that WaitReady needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Open returns an unverified handle for the configured driver.
func Open(cfg config.Database) (*sql.DB, error) {
	switch {
	case cfg.UsesPostgres():
		return OpenPostgres(cfg.Driver, cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	case cfg.Driver == config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenPostgres opens a PostgreSQL handle with the given pool limits. driver
// is the database/sql name: "postgres" for lib/pq or "pgx" for pgx/v5.
func OpenPostgres(driver, dsn string, maxOpen, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	return db, nil
}

// OpenSQLite opens a modernc.org/sqlite handle. The store is read-only for
// this service, so one connection avoids SQLITE_BUSY with no loss.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// Connect opens the configured store and blocks until it answers a ping,
// retrying up to cfg.ConnectRetries times with cfg.RetryDelay between attempts.
// The handle is closed when the store never becomes ready.
func Connect(ctx context.Context, cfg config.Database, log *slog.Logger) (*sql.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := WaitReady(ctx, db, cfg.ConnectRetries, cfg.RetryDelay, log); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.InfoContext(ctx, "database connected", "driver", cfg.Driver)
	return db, nil
}

// WaitReady pings p until it succeeds, attempts run out or ctx ends.
func WaitReady(ctx context.Context, p Pinger, attempts int, delay time.Duration, log *slog.Logger) error {
	if attempts < 1 {
		attempts = 1
	}
	try := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		try++
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return struct{}{}, p.PingContext(pctx)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(delay)),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.WarnContext(ctx, "database not ready",
				"attempt", try,
				"max_attempts", attempts,
				"retry_in", next,
				"error", err,
			)
		}),
	)
	if err != nil {
		return fmt.Errorf("database not ready after %d attempts: %w", try, err)
	}
	return nil
}
