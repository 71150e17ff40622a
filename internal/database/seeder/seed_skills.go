package seeder

import (
	"context"
	"fmt"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/skills"
)

// SkillsSeeder mirrors the extraction dictionary into skills_master so
// the catalog is queryable over SQL and the HTTP surface.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills_master" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills_master",
		"id", "skill_name", "category", "is_technical", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, name := range skills.Dictionary() {
		if err := insertSkillRow(ctx, tx, name); err != nil {
			return fmt.Errorf("insert %s: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertSkillRow(ctx context.Context, tx database.Tx, name string) error {
	technical := 1
	if skills.IsSoftSkill(name) {
		technical = 0
	}
	_, err := tx.Exec(
		ctx,
		`INSERT OR IGNORE INTO skills_master (skill_name, category, is_technical) VALUES (?, ?, ?)`,
		skill.Title(name),
		skills.CategoryOf(name),
		technical,
	)
	return err
}
