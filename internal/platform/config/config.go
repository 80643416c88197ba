package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	ReportTimeout time.Duration
}

// Database selects and tunes the record store.
type Database struct {
	Driver         string // postgres | pgx | sqlite | memory
	DSN            string
	SQLitePath     string
	ConnectRetries int
	RetryDelay     time.Duration
	MaxOpenConns   int
	MaxIdleConns   int
}

// RedisConfig configures the optional record cache. An empty URL disables it.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	RecordTTL    time.Duration
}

// Log configures the slog handler.
type Log struct {
	Level  string
	Format string
}

// Tracing configures the OpenTelemetry tracer provider.
type Tracing struct {
	Enabled     bool
	ServiceName string
	Exporter    string // stdout | otlp
	Endpoint    string
	SampleRatio float64
}

// Config is the full process configuration.
type Config struct {
	Server   Server
	Database Database
	Redis    RedisConfig
	Log      Log
	Tracing  Tracing
}

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// UsesPostgres reports whether the driver talks to PostgreSQL.
func (d Database) UsesPostgres() bool {
	return d.Driver == DriverPostgres || d.Driver == DriverPgx
}

// FromEnv builds a Config from environment variables so main stays lean.
// Malformed numbers and durations fall back to their defaults.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:          envString("WORLDPOP_ADDR", ":8080"),
			ReportTimeout: envDuration("REPORT_TIMEOUT", 10*time.Second),
		},
		Database: Database{
			Driver:         strings.ToLower(envString("DB_DRIVER", DriverPostgres)),
			DSN:            envString("DATABASE_URL", BuildPostgresDSNFromEnv()),
			SQLitePath:     envString("SQLITE_PATH", "world.db"),
			ConnectRetries: envInt("DB_CONNECT_RETRIES", 10),
			RetryDelay:     envDuration("DB_RETRY_DELAY", 5*time.Second),
			MaxOpenConns:   envInt("PG_MAX_OPEN_CONNS", 50),
			MaxIdleConns:   envInt("PG_MAX_IDLE_CONNS", 25),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			RecordTTL:    envDuration("RECORD_CACHE_TTL", 5*time.Minute),
		},
		Log: Log{
			Level:  strings.ToLower(envString("LOG_LEVEL", "info")),
			Format: strings.ToLower(envString("LOG_FORMAT", "text")),
		},
		Tracing: Tracing{
			Enabled:     strings.EqualFold(os.Getenv("TRACING_ENABLED"), "true"),
			ServiceName: envString("TRACING_SERVICE_NAME", "worldpop"),
			Exporter:    strings.ToLower(envString("TRACING_EXPORTER", "stdout")),
			Endpoint:    envString("OTLP_ENDPOINT", "localhost:4317"),
			SampleRatio: envRatio("TRACING_SAMPLE_RATIO", 1.0),
		},
	}
}

// BuildPostgresDSNFromEnv assembles a postgres:// URL from the PG_* variables.
func BuildPostgresDSNFromEnv() string {
	host := envString("PG_HOST", "localhost")
	port := envString("PG_PORT", "5432")
	user := envString("PG_USER", "postgres")
	pass := os.Getenv("PG_PASSWORD")
	db := envString("PG_DB", "world")
	ssl := envString("PG_SSLMODE", "disable")

	dsn := "postgres://" + user
	if pass != "" {
		dsn += ":" + pass
	}
	dsn += "@" + host + ":" + port + "/" + db + "?sslmode=" + ssl
	return dsn
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func envRatio(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return def
}
