// Package seeder fills freshly migrated tables with their baseline
// data: the course catalog the learning-path generator draws from and
// the skill dictionary mirrored into skills_master.
package seeder

import (
	"context"
	"fmt"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
)

// Seeder populates one table with its baseline rows. Implementations
// must be idempotent: running a seeder twice leaves the table unchanged.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Defaults returns every seeder a new database needs, in dependency
// order.
func Defaults() []Seeder {
	return []Seeder{
		ResourcesSeeder{},
		SkillsSeeder{},
	}
}

// Runner executes its seeders in order, stopping at the first failure.
type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
