package testutil_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/pkordes/trip-planner/migrations"
	"github.com/pkordes/trip-planner/testutil"
)

// tableQuery returns a single-boolean query reporting whether the table named
// by the one bind argument exists.
type tableQuery string

const (
	sqliteTableQuery tableQuery = `
		SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)`
	postgresTableQuery tableQuery = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
)

// TestMigrations_SQLite runs the round trip on a throwaway SQLite file, so it
// never needs external services.
func TestMigrations_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	roundTrip(t, db, goose.DialectSQLite3, sqliteTableQuery)
}

// TestMigrations_Postgres is the same round trip against a real Postgres
// database. Skipped automatically when TEST_DATABASE_URL is not set.
func TestMigrations_Postgres(t *testing.T) {
	db := testutil.NewSQLDB(t)

	roundTrip(t, db, goose.DialectPostgres, postgresTableQuery)
}

// roundTrip verifies the full migration cycle:
//
//  1. Reset to version 0 so the test is order-independent.
//  2. Apply all migrations (goose up) and assert kv_store exists.
//  3. Roll back everything and assert kv_store is gone.
func roundTrip(t *testing.T, db *sql.DB, dialect goose.Dialect, q tableQuery) {
	t.Helper()
	ctx := context.Background()

	provider, err := goose.NewProvider(dialect, db, migrations.FS)
	require.NoError(t, err, "create goose provider")

	// The storage integration tests may have already migrated a shared
	// Postgres database.
	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "initial reset")

	results, err := provider.Up(ctx)
	require.NoError(t, err, "goose up")
	assert.NotEmpty(t, results, "expected at least one migration to be applied")
	assert.True(t, tableExists(t, db, q, "kv_store"), "kv_store after up")

	// Up is idempotent once applied.
	again, err := provider.Up(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)

	_, err = provider.DownTo(ctx, 0)
	require.NoError(t, err, "goose down-to 0")
	assert.False(t, tableExists(t, db, q, "kv_store"), "kv_store after down")
}

func tableExists(t *testing.T, db *sql.DB, q tableQuery, table string) bool {
	t.Helper()
	var exists bool
	err := db.QueryRowContext(context.Background(), string(q), table).Scan(&exists)
	require.NoError(t, err, "check table existence for %q", table)
	return exists
}
