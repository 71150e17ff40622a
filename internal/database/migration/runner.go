// Package migration applies versioned SQL files to the analyzer
// database. Files follow the V<version>__<name>.sql convention and are
// recorded in schema_migrations with a checksum, so a file edited after
// it ran fails the next startup instead of silently diverging.
package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Runner applies pending migrations. Files come from Dir when it exists
// on disk, otherwise from FS (the embedded copy shipped in the binary).
type Runner struct {
	Dir string
	FS  fs.FS
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	migs, err := loadMigrations(r.source())
	if err != nil {
		return err
	}
	if len(migs) == 0 {
		return nil
	}

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedChecksums(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migs {
		sum, ok := applied[m.Version]
		if ok {
			if sum != m.Checksum {
				return fmt.Errorf("migration checksum mismatch: version=%d name=%s", m.Version, m.Name)
			}
			continue
		}
		if err := r.apply(ctx, db, m); err != nil {
			return err
		}
	}
	return nil
}

// source resolves where migration files are read from. A real directory
// on disk wins over the embedded copy, which lets deployments patch the
// schema without rebuilding.
func (r Runner) source() fs.FS {
	if r.Dir != "" {
		if info, err := os.Stat(r.Dir); err == nil && info.IsDir() {
			return os.DirFS(r.Dir)
		}
	}
	return r.FS
}

func appliedChecksums(ctx context.Context, db *sql.DB) (map[int64]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var v int64
		var sum string
		if err := rows.Scan(&v, &sum); err != nil {
			return nil, err
		}
		out[v] = sum
	}
	return out, rows.Err()
}

// apply runs one migration and its bookkeeping insert in a single
// transaction. The pool is pinned to one connection, so concurrent
// writers cannot interleave; busy_timeout covers a second process
// holding the file.
func (r Runner) apply(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration failed: version=%d file=%s: %w", m.Version, m.Filename, err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO schema_migrations (version, name, checksum, applied_at) VALUES (?, ?, ?, ?)`,
		m.Version, m.Name, m.Checksum, time.Now().UTC(),
	); err != nil {
		return err
	}
	return tx.Commit()
}
