package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"worldpop/internal/population/metrics"
	"worldpop/internal/population/models"
	"worldpop/pkg/platform/circuit"
)

const recordKeyPrefix = "worldpop:records:"

// Source is a complete record source, as wrapped by RedisCache.
type Source interface {
	FetchCities(ctx context.Context) ([]models.CityRecord, error)
	FetchCountries(ctx context.Context) ([]models.CountryRecord, error)
	FetchLanguages(ctx context.Context) ([]models.LanguageRecord, error)
}

// RedisCache caches whole record sets of another source in Redis. The cache
// is best effort: when Redis fails the wrapped source answers and the failure
// is only logged. Fetch errors of the wrapped source are never cached.
// Repeated Redis failures open a breaker that bypasses Redis until a probe
// succeeds.
type RedisCache struct {
	client  redis.Cmdable
	source  Source
	ttl     time.Duration
	breaker *circuit.Breaker
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// CacheOption configures a RedisCache.
type CacheOption func(*RedisCache)

// WithCacheMetrics records hits and misses.
func WithCacheMetrics(m *metrics.Metrics) CacheOption {
	return func(c *RedisCache) {
		c.metrics = m
	}
}

// WithCacheLogger sets the logger used for cache failures.
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *RedisCache) {
		c.logger = logger
	}
}

// WithCacheBreaker replaces the default breaker guarding Redis.
func WithCacheBreaker(b *circuit.Breaker) CacheOption {
	return func(c *RedisCache) {
		if b != nil {
			c.breaker = b
		}
	}
}

// NewRedisCache wraps source with a Redis cache holding each set for ttl.
func NewRedisCache(client redis.Cmdable, source Source, ttl time.Duration, opts ...CacheOption) *RedisCache {
	c := &RedisCache{
		client:  client,
		source:  source,
		ttl:     ttl,
		breaker: circuit.New("record-cache", circuit.WithFailureThreshold(3), circuit.WithSuccessThreshold(1)),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *RedisCache) FetchCities(ctx context.Context) ([]models.CityRecord, error) {
	return cachedFetch(ctx, c, SetCities, c.source.FetchCities)
}

func (c *RedisCache) FetchCountries(ctx context.Context) ([]models.CountryRecord, error) {
	return cachedFetch(ctx, c, SetCountries, c.source.FetchCountries)
}

func (c *RedisCache) FetchLanguages(ctx context.Context) ([]models.LanguageRecord, error) {
	return cachedFetch(ctx, c, SetLanguages, c.source.FetchLanguages)
}

// Invalidate drops every cached record set.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, cacheKey(SetCities), cacheKey(SetCountries), cacheKey(SetLanguages)).Err()
}

func cacheKey(set string) string {
	return recordKeyPrefix + set
}

// Breaker reports the state of the Redis breaker.
func (c *RedisCache) Breaker() *circuit.Breaker {
	return c.breaker
}

// redisFailed counts a Redis error against the breaker. Errors caused by the
// caller's own cancellation or deadline say nothing about Redis health.
func (c *RedisCache) redisFailed(ctx context.Context, msg, set string, err error) {
	if ctx.Err() != nil {
		c.logger.DebugContext(ctx, msg, "set", set, "error", err)
		return
	}
	c.logger.WarnContext(ctx, msg, "set", set, "error", err)
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.logger.WarnContext(ctx, "record cache bypassed after repeated failures", "breaker", c.breaker.Name())
	}
}

func (c *RedisCache) redisOK(ctx context.Context) {
	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "record cache recovered", "breaker", c.breaker.Name())
	}
}

func cachedFetch[T any](ctx context.Context, c *RedisCache, set string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	key := cacheKey(set)
	useRedis := c.breaker.Allow()

	if useRedis {
		raw, err := c.client.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			c.redisOK(ctx)
			out := []T{}
			uerr := json.Unmarshal(raw, &out)
			if uerr == nil && out != nil {
				c.metrics.RecordCacheHit(set)
				return out, nil
			}
			c.logger.WarnContext(ctx, "discarding unreadable cached records", "set", set, "error", uerr)
		case errors.Is(err, redis.Nil):
			c.redisOK(ctx)
		default:
			c.redisFailed(ctx, "record cache read failed", set, err)
			useRedis = false
		}
	}
	c.metrics.RecordCacheMiss(set)

	records, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if !useRedis {
		return records, nil
	}

	payload, err := json.Marshal(records)
	if err != nil {
		c.logger.WarnContext(ctx, "encode records for cache", "set", set, "error", err)
		return records, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.redisFailed(ctx, "record cache write failed", set, err)
	}
	return records, nil
}
