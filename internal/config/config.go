// Package config loads and validates application configuration from
// environment variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage driver names accepted in STORAGE_DRIVER.
var drivers = []string{"memory", "bolt", "sqlite", "postgres", "redis"}

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StorageDriver selects the durable store: memory, bolt, sqlite,
	// postgres or redis. Defaults to "bolt".
	StorageDriver string

	// StoragePath is the database file for the bolt and sqlite drivers.
	StoragePath string

	// DatabaseURL is the Postgres connection string. Required for postgres.
	DatabaseURL string

	// RedisAddr is host:port of the Redis server. Required for redis.
	RedisAddr string

	// RedisPassword is optional.
	RedisPassword string

	// DefaultLocale is the UI language used until one has been persisted.
	DefaultLocale string

	// MaxBodyBytes caps request bodies. Journal photos travel as base64, so
	// the default is generous (10 MiB).
	MaxBodyBytes int64
}

// Load reads ./.env when present, then environment variables. Variables
// already set in the environment win over the file.
func Load() (Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit .env path. A missing file is not an error.
func LoadFrom(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: reading %s: %w", envFile, err)
	}

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", "bolt")),
		StoragePath:   getEnv("STORAGE_PATH", "trips.db"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "10485760"), 10, 64)
	if err != nil || maxBody <= 0 {
		return Config{}, fmt.Errorf("config: MAX_BODY_BYTES must be a positive integer, got %q", os.Getenv("MAX_BODY_BYTES"))
	}
	cfg.MaxBodyBytes = maxBody

	if !contains(drivers, cfg.StorageDriver) {
		return Config{}, fmt.Errorf("config: STORAGE_DRIVER %q is not one of %s", cfg.StorageDriver, strings.Join(drivers, ", "))
	}

	var missing []string
	switch cfg.StorageDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case "redis":
		if cfg.RedisAddr == "" {
			missing = append(missing, "REDIS_ADDR")
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set for driver %s: %s",
			cfg.StorageDriver, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
