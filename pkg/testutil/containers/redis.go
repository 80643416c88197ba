//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const redisImage = "redis:7-alpine"

// RedisContainer is a Redis instance for the record cache, reachable both by
// URL (for config.RedisConfig) and through a ready client.
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
	Client    *redis.Client
}

// NewRedisContainer starts Redis and waits until it answers PING.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	ctx := sharedContext()

	c, err := tcredis.Run(ctx, redisImage, tcredis.WithLogLevel(tcredis.LogLevelWarning))
	if err != nil {
		abort(t, nil, "start %s: %v", redisImage, err)
	}
	url, err := c.ConnectionString(ctx)
	if err != nil {
		abort(t, c, "redis connection string: %v", err)
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		abort(t, c, "parse redis URL %q: %v", url, err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		abort(t, c, "ping redis: %v", err)
	}
	return &RedisContainer{Container: c, URL: url, Client: client}
}

// FlushAll drops every key. Use between tests to ensure isolation.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}
