package store

import (
	"context"
	"database/sql"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"
)

type ResourceStore interface {
	ResourcesForSkill(ctx context.Context, skillName string, limit int) ([]learning.Resource, error)
	CountResources(ctx context.Context) (int64, error)
}

type SQLiteResourceStore struct {
	db database.DB
}

func NewSQLiteResourceStore(db database.DB) *SQLiteResourceStore {
	return &SQLiteResourceStore{db: db}
}

// ResourcesForSkill matches the catalog case-insensitively and returns
// the best-rated entries first.
func (s *SQLiteResourceStore) ResourcesForSkill(ctx context.Context, skillName string, limit int) ([]learning.Resource, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := s.db.Query(
		ctx,
		`SELECT id, skill_name, resource_title, resource_url, platform,
		        duration_weeks, difficulty_level, description, rating, price
		 FROM learning_resources
		 WHERE LOWER(skill_name) = LOWER(?)
		 ORDER BY rating DESC
		 LIMIT ?`,
		skillName,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]learning.Resource, 0, limit)
	for rows.Next() {
		var (
			r      learning.Resource
			weeks  sql.NullInt64
			diff   sql.NullString
			desc   sql.NullString
			rating sql.NullFloat64
			price  sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.SkillName, &r.Title, &r.URL, &r.Platform,
			&weeks, &diff, &desc, &rating, &price); err != nil {
			return nil, err
		}
		r.DurationWeeks = int(weeks.Int64)
		if r.DurationWeeks == 0 {
			r.DurationWeeks = 1
		}
		r.Difficulty = diff.String
		if r.Difficulty == "" {
			r.Difficulty = learning.DifficultyBeginner
		}
		r.Description = desc.String
		r.Rating = rating.Float64
		r.Price = price.String
		if r.Price == "" {
			r.Price = "Free"
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteResourceStore) CountResources(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM learning_resources`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
