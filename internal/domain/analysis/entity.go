package analysis

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Methods recorded on a Result. Clustering is the primary path; overlap
// is the degradation when vectors cannot be clustered.
const (
	MethodKMeans  = "kmeans"
	MethodOverlap = "overlap"
)

// MissingSkill is a skill required by fetched jobs that the resume lacks.
// Demand counts how many of the fetched jobs require it.
type MissingSkill struct {
	Name   string
	Demand int
}

type Result struct {
	ID              uuid.UUID
	ResumeName      string
	Domain          string
	JobCount        int
	MatchPercentage float64
	MatchingSkills  []string
	MissingSkills   []MissingSkill
	Clusters        int
	// ClusterID is the cluster the resume landed in; nil when the
	// overlap fallback produced the match.
	ClusterID         *int
	JobsInSameCluster int
	Method            string
	CreatedAt         time.Time
}

// TopMissing returns up to n missing skills ordered by demand desc,
// name asc for equal demand.
func (r *Result) TopMissing(n int) []MissingSkill {
	out := make([]MissingSkill, len(r.MissingSkills))
	copy(out, r.MissingSkills)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Demand != out[j].Demand {
			return out[i].Demand > out[j].Demand
		}
		return out[i].Name < out[j].Name
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
