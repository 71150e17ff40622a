// Package database defines the storage contract the analyzer persists
// through. The concrete backend lives in database/sqlite; everything
// above it (stores, seeder, migrations) talks to these interfaces so
// tests can swap in fakes.
package database

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNoRows mirrors database/sql so callers can test for absence
// without importing the backend package.
var ErrNoRows = sql.ErrNoRows

// IsNoRows reports whether err is a row-absence error from any layer.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)

	SQLDB() *sql.DB
}

type Tx interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
