package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/config"
)

var allVars = []string{
	"PORT", "LOG_LEVEL", "CORS_ORIGINS", "STORAGE_DRIVER", "STORAGE_PATH",
	"DATABASE_URL", "REDIS_ADDR", "REDIS_PASSWORD", "DEFAULT_LOCALE", "MAX_BODY_BYTES",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

// noEnvFile points Load at a path that does not exist.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

// TestLoad_defaults verifies that every variable falls back to its default.
func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadFrom(noEnvFile(t))

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	require.Equal(t, "bolt", cfg.StorageDriver)
	require.Equal(t, "trips.db", cfg.StoragePath)
	require.Equal(t, "en", cfg.DefaultLocale)
	require.Equal(t, int64(10485760), cfg.MaxBodyBytes)
	require.Empty(t, cfg.DatabaseURL)
}

// TestLoad_overrides verifies that all values can be overridden via env vars.
func TestLoad_overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/trips")
	t.Setenv("DEFAULT_LOCALE", "zh")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg, err := config.LoadFrom(noEnvFile(t))

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	require.Equal(t, "postgres", cfg.StorageDriver)
	require.Equal(t, "postgres://user:pass@db:5432/trips", cfg.DatabaseURL)
	require.Equal(t, "zh", cfg.DefaultLocale)
	require.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

// TestLoad_missingDriverRequirement verifies that driver-specific variables
// are required only for their driver, and that the error names them.
func TestLoad_missingDriverRequirement(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"postgres", "DATABASE_URL"},
		{"redis", "REDIS_ADDR"},
	}
	for _, tc := range tests {
		t.Run(tc.driver, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("STORAGE_DRIVER", tc.driver)

			_, err := config.LoadFrom(noEnvFile(t))

			require.Error(t, err)
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoad_unknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_DRIVER", "mongo")

	_, err := config.LoadFrom(noEnvFile(t))

	require.ErrorContains(t, err, "STORAGE_DRIVER")
}

func TestLoad_badMaxBodyBytes(t *testing.T) {
	for _, v := range []string{"lots", "0", "-5"} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("MAX_BODY_BYTES", v)

			_, err := config.LoadFrom(noEnvFile(t))

			require.ErrorContains(t, err, "MAX_BODY_BYTES")
		})
	}
}

// TestLoadFrom_envFile verifies that a .env file fills unset variables but
// never overrides ones already present in the environment.
func TestLoadFrom_envFile(t *testing.T) {
	clearEnv(t)
	// Unset rather than blank so godotenv treats them as absent; t.Setenv
	// above still restores the originals.
	require.NoError(t, os.Unsetenv("STORAGE_DRIVER"))
	require.NoError(t, os.Unsetenv("STORAGE_PATH"))
	t.Setenv("PORT", "7000")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DRIVER=sqlite\nSTORAGE_PATH=/tmp/trips.sqlite\nPORT=1\n"), 0o600))

	cfg, err := config.LoadFrom(path)

	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.StorageDriver)
	require.Equal(t, "/tmp/trips.sqlite", cfg.StoragePath)
	require.Equal(t, "7000", cfg.Port)
}
