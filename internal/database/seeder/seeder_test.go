package seeder

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database/migration"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database/sqlite"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/migrations"
)

func newMigratedDB(t *testing.T) *sqlite.Store {
	t.Helper()

	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "seed_test.db")}
	db, err := sqlite.Connect(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := (migration.Runner{FS: migrations.Files}).Run(context.Background(), db.SQLDB()); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}
	return db
}

func tableCount(t *testing.T, db database.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestResourcesSeeder_PopulatesEmptyTable(t *testing.T) {
	db := newMigratedDB(t)

	if err := (ResourcesSeeder{}).Run(context.Background(), db); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := tableCount(t, db, "learning_resources"); got == 0 {
		t.Fatal("learning_resources is empty after seeding")
	}
}

func TestResourcesSeeder_PreservesUserRows(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()

	if err := (ResourcesSeeder{}).Run(ctx, db); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	seeded := tableCount(t, db, "learning_resources")

	_, err := db.Exec(ctx, `INSERT INTO learning_resources
		(skill_name, resource_title, resource_url, platform)
		VALUES ('Zig', 'Zig Book', 'https://example.com/zig', 'Other')`)
	if err != nil {
		t.Fatalf("insert user row: %v", err)
	}

	if err := (ResourcesSeeder{}).Run(ctx, db); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if got := tableCount(t, db, "learning_resources"); got != seeded+1 {
		t.Fatalf("rows = %d, want %d (seed skipped, user row kept)", got, seeded+1)
	}
}

func TestSkillsSeeder_Idempotent(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()

	if err := (SkillsSeeder{}).Run(ctx, db); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	first := tableCount(t, db, "skills_master")
	if first == 0 {
		t.Fatal("skills_master is empty after seeding")
	}

	if err := (SkillsSeeder{}).Run(ctx, db); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if got := tableCount(t, db, "skills_master"); got != first {
		t.Fatalf("rows = %d after rerun, want %d", got, first)
	}
}

func TestSkillsSeeder_MarksSoftSkills(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()

	if err := (SkillsSeeder{}).Run(ctx, db); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var technical int
	if err := db.QueryRow(ctx,
		`SELECT is_technical FROM skills_master WHERE skill_name = 'Python'`).Scan(&technical); err != nil {
		t.Fatalf("Python row missing: %v", err)
	}
	if technical != 1 {
		t.Errorf("Python is_technical = %d, want 1", technical)
	}

	if err := db.QueryRow(ctx,
		`SELECT is_technical FROM skills_master WHERE skill_name = 'Communication'`).Scan(&technical); err != nil {
		t.Fatalf("Communication row missing: %v", err)
	}
	if technical != 0 {
		t.Errorf("Communication is_technical = %d, want 0", technical)
	}
}

func TestEnsureTableColumns(t *testing.T) {
	db := newMigratedDB(t)
	ctx := context.Background()

	if err := EnsureTableColumns(ctx, db, "analysis_history", "id", "resume_filename", "match_percentage"); err != nil {
		t.Fatalf("EnsureTableColumns() error = %v", err)
	}

	err := EnsureTableColumns(ctx, db, "analysis_history", "id", "no_such_column")
	if err == nil || !strings.Contains(err.Error(), "missing column analysis_history.no_such_column") {
		t.Fatalf("error = %v, want missing column", err)
	}
}

type failingSeeder struct{}

func (failingSeeder) Name() string { return "boom" }

func (failingSeeder) Run(ctx context.Context, db database.DB) error {
	return errors.New("intentional failure")
}

func TestRunner_WrapsSeederErrors(t *testing.T) {
	db := newMigratedDB(t)

	err := (Runner{Seeders: []Seeder{failingSeeder{}}}).Run(context.Background(), db)
	if err == nil || !strings.Contains(err.Error(), "seed boom:") {
		t.Fatalf("error = %v, want wrapped seeder name", err)
	}
}

func TestRunner_NilDB(t *testing.T) {
	if err := (Runner{Seeders: Defaults()}).Run(context.Background(), nil); err == nil {
		t.Fatal("Run(nil db) error = nil, want failure")
	}
}
