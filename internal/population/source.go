package population

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"worldpop/internal/platform/config"
	"worldpop/internal/platform/database"
	"worldpop/internal/platform/redis"
	"worldpop/internal/population/metrics"
	"worldpop/internal/population/store"
)

// Source is the record source selected by configuration together with the
// connections it owns.
type Source struct {
	store.Source
	// Checks probes each backing connection, keyed by dependency name.
	Checks  map[string]func(context.Context) error
	closers []func() error
}

// OpenSource builds the configured record source: the sample world in memory,
// or a SQL database, optionally behind the Redis record cache. A Redis
// failure at startup disables the cache instead of failing.
func OpenSource(ctx context.Context, cfg config.Config, log *slog.Logger, m *metrics.Metrics) (*Source, error) {
	src := &Source{Checks: map[string]func(context.Context) error{}}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		mem := store.NewInMemory()
		store.SeedSampleWorld(mem)
		src.Source = mem
		log.InfoContext(ctx, "serving the in-memory sample world")
	default:
		db, err := database.Connect(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("connect record store: %w", err)
		}
		src.Source = store.NewSQLSource(db, store.WithSQLLogger(log))
		src.Checks["database"] = db.PingContext
		src.closers = append(src.closers, db.Close)
	}

	rc, err := redis.New(ctx, cfg.Redis)
	switch {
	case err != nil:
		log.WarnContext(ctx, "record cache disabled", "error", err)
	case rc != nil:
		src.Source = store.NewRedisCache(rc.Client, src.Source, cfg.Redis.RecordTTL,
			store.WithCacheMetrics(m),
			store.WithCacheLogger(log),
		)
		src.Checks["redis"] = rc.Health
		src.closers = append(src.closers, rc.Close)
		log.InfoContext(ctx, "record cache enabled", "ttl", cfg.Redis.RecordTTL)
	}
	return src, nil
}

// Close releases every connection held by the source.
func (s *Source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}
