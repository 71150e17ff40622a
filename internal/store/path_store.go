package store

import (
	"context"
	"strings"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"
)

// WeekRecord is the persisted summary of one learning-path week.
type WeekRecord struct {
	ID         int64
	AnalysisID int64
	WeekNumber int
	SkillFocus string
	Resources  string
	Milestones string
}

type PathStore interface {
	SaveWeeks(ctx context.Context, analysisID int64, weeks []learning.Week) error
	WeeksByAnalysis(ctx context.Context, analysisID int64) ([]WeekRecord, error)
}

type SQLitePathStore struct {
	db database.DB
}

func NewSQLitePathStore(db database.DB) *SQLitePathStore {
	return &SQLitePathStore{db: db}
}

// SaveWeeks persists the plan summary: focus skills comma-joined, the
// top three milestones joined with "; ". The full resource detail lives
// in the rendered report, not the database.
func (s *SQLitePathStore) SaveWeeks(ctx context.Context, analysisID int64, weeks []learning.Week) error {
	if len(weeks) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, w := range weeks {
		milestones := w.Milestones
		if len(milestones) > 3 {
			milestones = milestones[:3]
		}
		_, err := tx.Exec(
			ctx,
			`INSERT INTO learning_paths (analysis_id, week_number, skill_focus, resources, milestones)
			 VALUES (?, ?, ?, ?, ?)`,
			analysisID,
			w.Number,
			strings.Join(w.SkillNames(), ", "),
			"See learning path for details",
			strings.Join(milestones, "; "),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *SQLitePathStore) WeeksByAnalysis(ctx context.Context, analysisID int64) ([]WeekRecord, error) {
	rows, err := s.db.Query(
		ctx,
		`SELECT id, analysis_id, week_number, skill_focus, resources, milestones
		 FROM learning_paths
		 WHERE analysis_id = ?
		 ORDER BY week_number ASC`,
		analysisID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WeekRecord
	for rows.Next() {
		var w WeekRecord
		if err := rows.Scan(&w.ID, &w.AnalysisID, &w.WeekNumber, &w.SkillFocus, &w.Resources, &w.Milestones); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
