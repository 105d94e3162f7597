// Package storage provides the durable key/value drivers that back the trip
// repository and the locale store. Each driver holds opaque byte values under
// string keys; the application uses two keys (see Keys below).
//
// Drivers:
//   - memory: process-local map, for tests and throwaway sessions
//   - bolt: a single bbolt file (the default for a local install)
//   - sqlite: a single SQLite file, schema managed by goose
//   - postgres: a kv_store table, schema managed by goose
//   - redis: one Redis string per key
package storage

import (
	"context"
	"errors"
)

// Well-known keys.
const (
	// TripsKey holds the JSON-encoded []domain.Trip collection.
	TripsKey = "trips"
	// LocaleKey holds the active locale code ("en" or "zh").
	LocaleKey = "app_lang"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable key/value store.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases the resources held by the driver.
	Close() error
}
