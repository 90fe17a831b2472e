// Package config handles application configuration loading from environment
// variables. A .env file in the working directory is read first when present;
// variables already set in the environment win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// envFile is the optional dotenv file read by Load.
const envFile = ".env"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel slog.Level

	// Content
	PostsDir    string
	StoreDriver string

	// PostgreSQL connection, used when StoreDriver is "postgres"
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache). An empty host disables caching.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	CacheTTL       time.Duration

	// WriteRateLimit is the number of POST/DELETE requests a client IP may
	// make per minute.
	WriteRateLimit int
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error for malformed values
// and for unsafe settings in production mode.
func Load() (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		PostsDir:    envOrDefault("POSTS_DIR", "posts"),
		StoreDriver: envOrDefault("STORE_DRIVER", DriverMemory),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "devblog"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "devblog"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
	}

	defaultLevel := "info"
	if cfg.IsDev() {
		defaultLevel = "debug"
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(envOrDefault("LOG_LEVEL", defaultLevel))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	ttl, err := time.ParseDuration(envOrDefault("CACHE_TTL", "5m"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("CACHE_TTL must be a positive duration, got %q", os.Getenv("CACHE_TTL"))
	}
	cfg.CacheTTL = ttl

	limit, err := strconv.Atoi(envOrDefault("WRITE_RATE_LIMIT", "30"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("WRITE_RATE_LIMIT must be a positive integer, got %q", os.Getenv("WRITE_RATE_LIMIT"))
	}
	cfg.WriteRateLimit = limit

	switch cfg.StoreDriver {
	case DriverMemory, DriverPostgres:
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMemory, DriverPostgres, cfg.StoreDriver)
	}

	if cfg.Env == "production" && cfg.StoreDriver == DriverPostgres {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ValkeyAddr returns the cache address (host:port).
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.ValkeyHost, c.ValkeyPort)
}

// CacheEnabled reports whether a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
