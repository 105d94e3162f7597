package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/storage"
	"github.com/pkordes/trip-planner/testutil"
)

// compile-time check: pgxmock pools can stand in for the real pool.
var _ storage.Querier = (pgxmock.PgxPoolIface)(nil)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestPostgres_Get(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1`).
		WithArgs(storage.TripsKey).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`[{"id":"t1"}]`))

	got, err := storage.NewPostgres(mock).Get(context.Background(), storage.TripsKey)

	require.NoError(t, err)
	assert.Equal(t, `[{"id":"t1"}]`, string(got))
}

func TestPostgres_Get_NotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs(storage.LocaleKey).
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.NewPostgres(mock).Get(context.Background(), storage.LocaleKey)

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPostgres_Get_Error(t *testing.T) {
	mock := newMock(t)
	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs(storage.TripsKey).
		WillReturnError(dbErr)

	_, err := storage.NewPostgres(mock).Get(context.Background(), storage.TripsKey)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}

func TestPostgres_Put(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs(storage.TripsKey, `[]`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := storage.NewPostgres(mock).Put(context.Background(), storage.TripsKey, []byte(`[]`))

	assert.NoError(t, err)
}

func TestPostgres_Put_Error(t *testing.T) {
	mock := newMock(t)
	dbErr := errors.New("disk full")
	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs(storage.TripsKey, `[]`).
		WillReturnError(dbErr)

	err := storage.NewPostgres(mock).Put(context.Background(), storage.TripsKey, []byte(`[]`))

	assert.ErrorIs(t, err, dbErr)
}

// TestPostgres_Integration runs the shared contract against a real database
// inside a transaction that is rolled back afterwards.
// Skipped when TEST_DATABASE_URL is not set.
func TestPostgres_Integration(t *testing.T) {
	db := testutil.NewSQLDB(t)
	testutil.MigrateUp(t, db)
	pool := testutil.NewPool(t)

	runContract(t, func(t *testing.T) storage.Store {
		tx, err := pool.Begin(context.Background())
		require.NoError(t, err, "begin transaction")
		t.Cleanup(func() {
			// Rollback discards all changes made during the test, so no cleanup SQL needed.
			_ = tx.Rollback(context.Background())
		})
		return storage.NewPostgres(tx)
	})
}
