package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/database"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
)

// AnalysisRecord is one row of analysis_history. Skill lists are stored
// comma-joined in display form, the way reports present them.
type AnalysisRecord struct {
	ID                int64
	ResumeFilename    string
	UserName          string
	UserEmail         string
	ExtractedSkills   []string
	MissingSkills     []string
	MatchPercentage   float64
	JobsAnalyzed      int
	ClusterID         *int
	JobsInSameCluster int
	AnalysisDate      time.Time
}

type AnalysisStore interface {
	SaveAnalysis(ctx context.Context, rec AnalysisRecord) (int64, error)
	RecentAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error)
	AnalysisByID(ctx context.Context, id int64) (AnalysisRecord, error)
}

type SQLiteAnalysisStore struct {
	db database.DB
}

func NewSQLiteAnalysisStore(db database.DB) *SQLiteAnalysisStore {
	return &SQLiteAnalysisStore{db: db}
}

// RecordFromResult flattens a domain result into its history row.
func RecordFromResult(res *analysis.Result, resumeFile, userName, userEmail string, extracted []string) AnalysisRecord {
	missing := make([]string, 0, len(res.MissingSkills))
	for _, m := range res.MissingSkills {
		missing = append(missing, m.Name)
	}
	return AnalysisRecord{
		ResumeFilename:    resumeFile,
		UserName:          userName,
		UserEmail:         userEmail,
		ExtractedSkills:   extracted,
		MissingSkills:     missing,
		MatchPercentage:   res.MatchPercentage,
		JobsAnalyzed:      res.JobCount,
		ClusterID:         res.ClusterID,
		JobsInSameCluster: res.JobsInSameCluster,
	}
}

func (s *SQLiteAnalysisStore) SaveAnalysis(ctx context.Context, rec AnalysisRecord) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var clusterID any
	if rec.ClusterID != nil {
		clusterID = *rec.ClusterID
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO analysis_history
		 (resume_filename, user_name, user_email, extracted_skills, missing_skills,
		  match_percentage, jobs_analyzed, cluster_id, jobs_in_same_cluster)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ResumeFilename,
		nullIfEmpty(rec.UserName),
		nullIfEmpty(rec.UserEmail),
		strings.Join(rec.ExtractedSkills, ", "),
		strings.Join(rec.MissingSkills, ", "),
		rec.MatchPercentage,
		rec.JobsAnalyzed,
		clusterID,
		rec.JobsInSameCluster,
	)
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRow(ctx, `SELECT last_insert_rowid()`).Scan(&id); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLiteAnalysisStore) RecentAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		ctx,
		`SELECT id, resume_filename, user_name, user_email, extracted_skills,
		        missing_skills, match_percentage, jobs_analyzed, cluster_id,
		        jobs_in_same_cluster, analysis_date
		 FROM analysis_history
		 ORDER BY analysis_date DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AnalysisRecord, 0, limit)
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteAnalysisStore) AnalysisByID(ctx context.Context, id int64) (AnalysisRecord, error) {
	row := s.db.QueryRow(
		ctx,
		`SELECT id, resume_filename, user_name, user_email, extracted_skills,
		        missing_skills, match_percentage, jobs_analyzed, cluster_id,
		        jobs_in_same_cluster, analysis_date
		 FROM analysis_history
		 WHERE id = ?`,
		id,
	)
	return scanAnalysis(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(sc scanner) (AnalysisRecord, error) {
	var (
		rec       AnalysisRecord
		userName  sql.NullString
		userEmail sql.NullString
		extracted sql.NullString
		missing   sql.NullString
		cluster   sql.NullInt64
		date      sql.NullString
	)
	err := sc.Scan(
		&rec.ID, &rec.ResumeFilename, &userName, &userEmail, &extracted,
		&missing, &rec.MatchPercentage, &rec.JobsAnalyzed, &cluster,
		&rec.JobsInSameCluster, &date,
	)
	if err != nil {
		return AnalysisRecord{}, err
	}
	rec.UserName = userName.String
	rec.UserEmail = userEmail.String
	rec.ExtractedSkills = splitList(extracted.String)
	rec.MissingSkills = splitList(missing.String)
	if cluster.Valid {
		c := int(cluster.Int64)
		rec.ClusterID = &c
	}
	if date.Valid {
		if t, perr := parseTimestamp(date.String); perr == nil {
			rec.AnalysisDate = t
		}
	}
	return rec, nil
}

func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// parseTimestamp accepts the formats SQLite hands back for
// CURRENT_TIMESTAMP columns and driver-written time values.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &time.ParseError{Layout: "timestamp", Value: raw}
}
