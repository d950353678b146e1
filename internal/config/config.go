package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Board        BoardConfig
	Source       SourceConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Format string
}

// AuthConfig defines viewer token parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
	// APIKeyHash is a bcrypt hash; token issuance is disabled when empty.
	APIKeyHash string
}

// BoardConfig holds the display defaults used when a request names no grouping or ordering.
type BoardConfig struct {
	DefaultGrouping string
	DefaultOrdering string
	CollationLocale string
	GroupFallback   string
}

// SourceKind selects where the snapshot comes from.
type SourceKind string

const (
	SourceHTTP     SourceKind = "http"
	SourcePostgres SourceKind = "postgres"
)

// SourceConfig controls snapshot acquisition.
type SourceConfig struct {
	Kind                   SourceKind
	URL                    string
	TimeoutSeconds         int
	CacheTTLSeconds        int
	RefreshIntervalSeconds int
}

// NotificationConfig holds the webhook that receives snapshot events.
type NotificationConfig struct {
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	kind := SourceKind(getEnv("SOURCE_KIND", string(SourceHTTP)))
	if kind != SourceHTTP && kind != SourcePostgres {
		return nil, fmt.Errorf("invalid SOURCE_KIND %q", kind)
	}

	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connMaxIdle := int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "kanban-board"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			RunMigrations:  runMigrations,
			ConnMaxIdleSec: connMaxIdle,
			ConnMaxLifeSec: connMaxLife,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
			APIKeyHash:            os.Getenv("AUTH_API_KEY_HASH"),
		},
		Board: BoardConfig{
			DefaultGrouping: getEnv("BOARD_DEFAULT_GROUPING", "status"),
			DefaultOrdering: getEnv("BOARD_DEFAULT_ORDERING", "priority"),
			CollationLocale: getEnv("BOARD_COLLATION_LOCALE", "und"),
			GroupFallback:   getEnv("BOARD_GROUP_FALLBACK", "discovery"),
		},
		Source: SourceConfig{
			Kind:                   kind,
			URL:                    getEnv("SOURCE_URL", "https://api.quicksell.co/v1/internal/frontend-assignment"),
			TimeoutSeconds:         getEnvAsInt("SOURCE_TIMEOUT_SECONDS", 10),
			CacheTTLSeconds:        getEnvAsInt("SOURCE_CACHE_TTL_SECONDS", 60),
			RefreshIntervalSeconds: getEnvAsInt("SOURCE_REFRESH_INTERVAL_SECONDS", 0),
		},
		Notification: NotificationConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the upstream fetch timeout.
func (s SourceConfig) Timeout() time.Duration {
	return seconds(s.TimeoutSeconds)
}

// CacheTTL returns how long a fetched snapshot is served from cache. Zero disables caching.
func (s SourceConfig) CacheTTL() time.Duration {
	return seconds(s.CacheTTLSeconds)
}

// RefreshInterval returns the background refresh period. Zero disables the refresh worker.
func (s SourceConfig) RefreshInterval() time.Duration {
	return seconds(s.RefreshIntervalSeconds)
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
