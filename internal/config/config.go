// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Database drivers understood by database/sql
const (
	DriverPQ  = "postgres"
	DriverPGX = "pgx"
)

// Config validation errors
var (
	// ErrMissingDatabaseURL is returned when the postgres backend has no DSN
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required for the postgres backend")
	// ErrInvalidBackend is returned for an unknown STORE_BACKEND
	ErrInvalidBackend = errors.New("STORE_BACKEND must be postgres or memory")
	// ErrInvalidDriver is returned for an unknown DB_DRIVER
	ErrInvalidDriver = errors.New("DB_DRIVER must be postgres or pgx")
	// ErrMissingAuthKeys is returned when neither a shared secret nor a JWKS URL is set
	ErrMissingAuthKeys = errors.New("AUTH_JWT_SECRET or AUTH_JWKS_URL is required")
	// ErrInvalidCacheSize is returned when AuthCacheSize is negative
	ErrInvalidCacheSize = errors.New("AuthCacheSize cannot be negative")
	// ErrInvalidPort is returned when Port is empty
	ErrInvalidPort = errors.New("Port is required")
)

// Config holds the configuration for the server.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// StoreBackend selects "postgres" or the in-process "memory" store.
	StoreBackend string

	// DatabaseURL is the Postgres DSN. Required for the postgres backend.
	DatabaseURL string

	// DBDriver is the database/sql driver name: "postgres" (lib/pq) or "pgx".
	DBDriver string

	// RunMigrations applies embedded goose migrations at startup.
	RunMigrations bool

	// AuthJWTSecret verifies HS256 tokens without a 'kid'.
	AuthJWTSecret string

	// AuthJWKSURL is fetched and refreshed for tokens carrying a 'kid'.
	AuthJWKSURL string

	// AuthIssuer, when set, must equal the token's 'iss' claim.
	AuthIssuer string

	// AuthCacheSize bounds the verified-token cache. 0 disables caching.
	AuthCacheSize int

	// AuthCacheTTL caps how long a verified token is reused.
	AuthCacheTTL time.Duration

	// JWKSRefresh is the minimum refresh interval for the remote key set.
	JWKSRefresh time.Duration

	// LogLevel is debug, info, warn or error.
	LogLevel slog.Level

	// LogFormat is "text" or "json".
	LogFormat string
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Port == "" {
		return ErrInvalidPort
	}

	switch c.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
		if c.DBDriver != DriverPQ && c.DBDriver != DriverPGX {
			return fmt.Errorf("%w: got %q", ErrInvalidDriver, c.DBDriver)
		}
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidBackend, c.StoreBackend)
	}

	if c.AuthJWTSecret == "" && c.AuthJWKSURL == "" {
		return ErrMissingAuthKeys
	}
	if c.AuthCacheSize < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheSize, c.AuthCacheSize)
	}

	return nil
}

// DefaultConfig returns a Config with sensible default values.
// Auth keys and the database URL have no defaults.
func DefaultConfig() Config {
	return Config{
		Port:          "3000",
		StoreBackend:  BackendPostgres,
		DBDriver:      DriverPQ,
		RunMigrations: true,
		AuthCacheSize: 1024,
		AuthCacheTTL:  5 * time.Minute,
		JWKSRefresh:   15 * time.Minute,
		LogLevel:      slog.LevelInfo,
		LogFormat:     "text",
	}
}

// FromEnv creates a Config from environment variables.
// Uses defaults for any missing environment variables; invalid numeric values
// are logged and replaced by the default.
//
// Environment variables:
//   - APP_PORT: listen port (default: 3000)
//   - STORE_BACKEND: postgres or memory (default: postgres)
//   - DATABASE_URL: Postgres DSN
//   - DB_DRIVER: postgres (lib/pq) or pgx (default: postgres)
//   - RUN_MIGRATIONS: "true"/"1" or "false"/"0" (default: true)
//   - AUTH_JWT_SECRET: HS256 shared secret
//   - AUTH_JWKS_URL: JWKS endpoint for kid-bearing tokens
//   - AUTH_ISSUER: required 'iss' claim (default: unchecked)
//   - AUTH_CACHE_SIZE: verified token cache entries, 0 to disable (default: 1024)
//   - AUTH_CACHE_TTL_SECONDS: verified token cache lifetime (default: 300)
//   - AUTH_JWKS_REFRESH_MINUTES: key set refresh interval (default: 15)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: text or json (default: text)
func FromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("APP_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("STORE_BACKEND"); v != "" {
		cfg.StoreBackend = strings.ToLower(v)
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.DBDriver = strings.ToLower(v)
	}
	if v := os.Getenv("RUN_MIGRATIONS"); v != "" {
		cfg.RunMigrations = v == "true" || v == "1"
	}

	cfg.AuthJWTSecret = os.Getenv("AUTH_JWT_SECRET")
	cfg.AuthJWKSURL = os.Getenv("AUTH_JWKS_URL")
	cfg.AuthIssuer = os.Getenv("AUTH_ISSUER")

	if v := os.Getenv("AUTH_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.AuthCacheSize = n
		} else {
			slog.Warn("[CONFIG] invalid AUTH_CACHE_SIZE value, using default",
				"value", v,
				"default", cfg.AuthCacheSize,
				"error", err,
			)
		}
	}

	if v := os.Getenv("AUTH_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AuthCacheTTL = time.Duration(n) * time.Second
		} else {
			slog.Warn("[CONFIG] invalid AUTH_CACHE_TTL_SECONDS value, using default",
				"value", v,
				"default_seconds", int(cfg.AuthCacheTTL.Seconds()),
				"error", err,
			)
		}
	}

	if v := os.Getenv("AUTH_JWKS_REFRESH_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.JWKSRefresh = time.Duration(n) * time.Minute
		} else {
			slog.Warn("[CONFIG] invalid AUTH_JWKS_REFRESH_MINUTES value, using default",
				"value", v,
				"default_minutes", int(cfg.JWKSRefresh.Minutes()),
				"error", err,
			)
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = level
		} else {
			slog.Warn("[CONFIG] invalid LOG_LEVEL value, using default",
				"value", v,
				"default", cfg.LogLevel.String(),
			)
		}
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	return cfg
}
