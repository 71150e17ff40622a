package seeder

import (
	"context"
	"fmt"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
)

// EnsureTableColumns verifies the migrated schema carries the columns a
// seeder is about to write, failing fast with a readable mismatch error
// instead of a mid-insert one.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	switch {
	case db == nil:
		return fmt.Errorf("nil db")
	case table == "":
		return fmt.Errorf("empty table")
	}
	for _, col := range columns {
		if col == "" {
			return fmt.Errorf("empty column")
		}
	}

	existing, err := tableColumns(ctx, db, table)
	if err != nil {
		return fmt.Errorf("inspect table %s: %w", table, err)
	}
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}

func tableColumns(ctx context.Context, db database.DB, table string) (map[string]struct{}, error) {
	rows, err := db.Query(ctx, `SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = struct{}{}
	}
	return cols, rows.Err()
}
