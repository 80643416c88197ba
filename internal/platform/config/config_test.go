package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"WORLDPOP_ADDR", "REPORT_TIMEOUT", "DB_DRIVER", "DATABASE_URL", "SQLITE_PATH",
		"DB_CONNECT_RETRIES", "DB_RETRY_DELAY", "PG_HOST", "PG_PORT", "PG_USER",
		"PG_PASSWORD", "PG_DB", "PG_SSLMODE", "REDIS_URL", "RECORD_CACHE_TTL",
		"LOG_LEVEL", "LOG_FORMAT", "TRACING_ENABLED", "TRACING_SAMPLE_RATIO",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReportTimeout)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://postgres@localhost:5432/world?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.ConnectRetries)
	assert.Equal(t, 5*time.Second, cfg.Database.RetryDelay)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.RecordTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("WORLDPOP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/data/world.db")
	t.Setenv("DB_CONNECT_RETRIES", "3")
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("TRACING_ENABLED", "TRUE")
	t.Setenv("TRACING_SAMPLE_RATIO", "0.25")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/data/world.db", cfg.Database.SQLitePath)
	assert.Equal(t, 3, cfg.Database.ConnectRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.RetryDelay)
	assert.Equal(t, "redis://cache:6379/1", cfg.Redis.URL)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, 0.25, cfg.Tracing.SampleRatio)
}

func TestFromEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_CONNECT_RETRIES", "many")
	t.Setenv("DB_RETRY_DELAY", "soon")
	t.Setenv("TRACING_SAMPLE_RATIO", "2")

	cfg := FromEnv()

	assert.Equal(t, 10, cfg.Database.ConnectRetries)
	assert.Equal(t, 5*time.Second, cfg.Database.RetryDelay)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestBuildPostgresDSNFromEnv(t *testing.T) {
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_PORT", "6543")
	t.Setenv("PG_USER", "report")
	t.Setenv("PG_PASSWORD", "s3cret")
	t.Setenv("PG_DB", "world")
	t.Setenv("PG_SSLMODE", "require")

	assert.Equal(t, "postgres://report:s3cret@db:6543/world?sslmode=require", BuildPostgresDSNFromEnv())
}

func TestUsesPostgres(t *testing.T) {
	assert.True(t, Database{Driver: DriverPostgres}.UsesPostgres())
	assert.True(t, Database{Driver: DriverPgx}.UsesPostgres())
	assert.False(t, Database{Driver: DriverSQLite}.UsesPostgres())
	assert.False(t, Database{Driver: DriverMemory}.UsesPostgres())
}
