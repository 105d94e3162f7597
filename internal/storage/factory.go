package storage

import (
	"context"
	"fmt"
)

// Driver names accepted by Open.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Options selects and configures a driver.
type Options struct {
	Driver        string
	Path          string // bolt, sqlite
	DatabaseURL   string // postgres
	RedisAddr     string // redis
	RedisPassword string // redis
}

// Open constructs the Store named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverBolt:
		return NewBolt(opts.Path)
	case DriverSQLite:
		return NewSQLite(ctx, opts.Path)
	case DriverPostgres:
		return OpenPostgres(ctx, opts.DatabaseURL)
	case DriverRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword)
	default:
		return nil, fmt.Errorf("storage.Open: unknown driver %q", opts.Driver)
	}
}
