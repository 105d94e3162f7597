package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Querier is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn,
// pgx.Tx, and pgxmock pools. Accepting it instead of *pgxpool.Pool lets
// integration tests pass a transaction that is rolled back after each test,
// and unit tests pass a mock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgStore keeps every key as a row of the kv_store table.
type pgStore struct {
	db    Querier
	close func()
}

// NewPostgres constructs a Store backed by the provided db connection.
// The caller owns db; Close on the returned Store does not close it.
func NewPostgres(db Querier) Store {
	return &pgStore{db: db, close: func() {}}
}

// OpenPostgres connects to dsn, verifies the connection, applies pending
// migrations, and returns a Store that owns the pool.
func OpenPostgres(ctx context.Context, dsn string) (Store, error) {
	// New() does not open connections immediately; the ping does.
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage.OpenPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage.OpenPostgres: ping: %w", err)
	}

	// goose needs database/sql; borrow a handle backed by the same pool.
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()
	if err := Migrate(ctx, sqlDB, goose.DialectPostgres); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage.OpenPostgres: %w", err)
	}

	return &pgStore{db: pool, close: pool.Close}, nil
}

func (s *pgStore) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_store WHERE key = $1`

	var v string
	if err := s.db.QueryRow(ctx, q, key).Scan(&v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage.pgStore.Get: %w", err)
	}
	return []byte(v), nil
}

func (s *pgStore) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.db.Exec(ctx, q, key, string(value)); err != nil {
		return fmt.Errorf("storage.pgStore.Put: %w", err)
	}
	return nil
}

func (s *pgStore) Close() error {
	s.close()
	return nil
}
