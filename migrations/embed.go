// Package migrations embeds the SQL migration files so they can be applied
// by the goose programmatic API when the sqlite and postgres storage drivers
// open, and by integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// The statements are portable between SQLite and Postgres.
//
//go:embed *.sql
var FS embed.FS
