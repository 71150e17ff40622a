// Package dto defines the JSON shapes the API returns. Handlers map
// domain types into these; nothing here reaches back into the domain.
package dto

type MissingSkillResponse struct {
	Name   string `json:"name"`
	Demand int    `json:"demand"`
}

type JobMatchResponse struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

type ResumeResponse struct {
	FileName    string          `json:"file_name"`
	ContactName string          `json:"contact_name,omitempty"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Skills      []SkillResponse `json:"skills"`
}

// AnalysisRunResponse is the full payload of one finished run.
type AnalysisRunResponse struct {
	AnalysisID        int64                  `json:"analysis_id"`
	Resume            ResumeResponse         `json:"resume"`
	Domain            string                 `json:"domain"`
	JobsAnalyzed      int                    `json:"jobs_analyzed"`
	MatchPercentage   float64                `json:"match_percentage"`
	Method            string                 `json:"method"`
	ClusterID         *int                   `json:"cluster_id"`
	JobsInSameCluster int                    `json:"jobs_in_same_cluster"`
	MatchingSkills    []string               `json:"matching_skills"`
	MissingSkills     []MissingSkillResponse `json:"missing_skills"`
	JobMatches        []JobMatchResponse     `json:"job_matches"`
	LearningPath      string                 `json:"learning_path"`
}

// HistoryItemResponse is one persisted analysis_history row.
type HistoryItemResponse struct {
	ID                int64    `json:"id"`
	ResumeFilename    string   `json:"resume_filename"`
	UserName          string   `json:"user_name,omitempty"`
	UserEmail         string   `json:"user_email,omitempty"`
	ExtractedSkills   []string `json:"extracted_skills"`
	MissingSkills     []string `json:"missing_skills"`
	MatchPercentage   float64  `json:"match_percentage"`
	JobsAnalyzed      int      `json:"jobs_analyzed"`
	ClusterID         *int     `json:"cluster_id"`
	JobsInSameCluster int      `json:"jobs_in_same_cluster"`
	AnalysisDate      string   `json:"analysis_date"`
}

type WeekResponse struct {
	WeekNumber int    `json:"week_number"`
	SkillFocus string `json:"skill_focus"`
	Resources  string `json:"resources"`
	Milestones string `json:"milestones"`
}

type HistoryDetailResponse struct {
	HistoryItemResponse
	Weeks []WeekResponse `json:"weeks"`
}
