// Package analyze measures how well a resume fits a set of job
// postings. The primary signal clusters skill-presence vectors and
// reads match strength from cluster co-membership; a plain overlap
// ratio covers the cases clustering cannot.
package analyze

import (
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/resume"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultClusters = 3

type Analyzer struct {
	clusters int
	logger   zerolog.Logger
}

func NewAnalyzer(logger zerolog.Logger) *Analyzer {
	return &Analyzer{clusters: defaultClusters, logger: logger}
}

// Analyze compares the resume against the fetched jobs and returns a
// complete result. It never fails: when there is nothing to cluster the
// result simply carries a zero match.
func (a *Analyzer) Analyze(r *resume.Resume, jobs []job.Job, domain string) *analysis.Result {
	res := &analysis.Result{
		ID:         uuid.New(),
		ResumeName: filepath.Base(r.FilePath),
		Domain:     domain,
		JobCount:   len(jobs),
		Method:     analysis.MethodOverlap,
		CreatedAt:  time.Now().UTC(),
	}

	if len(jobs) == 0 {
		a.logger.Warn().Msg("no jobs to analyze")
		return res
	}
	if len(r.Skills) == 0 {
		a.logger.Warn().Msg("resume has no extracted skills")
		return res
	}

	a.identifyGaps(r, jobs, res)

	pct, clusterID, inSame, err := a.clusterMatch(r, jobs)
	if err != nil {
		a.logger.Warn().Err(err).Msg("clustering failed, using overlap match")
		res.MatchPercentage = overlapMatch(r, jobs)
		return res
	}
	res.Method = analysis.MethodKMeans
	res.MatchPercentage = pct
	res.ClusterID = &clusterID
	res.JobsInSameCluster = inSame
	res.Clusters = minInt(a.clusters, len(jobs)+1)

	a.logger.Info().
		Float64("match", res.MatchPercentage).
		Int("matching", len(res.MatchingSkills)).
		Int("missing", len(res.MissingSkills)).
		Msg("analysis complete")
	return res
}

// identifyGaps splits every skill demanded by the jobs into matching
// and missing, with demand counting how many postings want it.
func (a *Analyzer) identifyGaps(r *resume.Resume, jobs []job.Job, res *analysis.Result) {
	type demanded struct {
		display string
		count   int
	}
	byName := map[string]*demanded{}
	for _, j := range jobs {
		for _, raw := range j.RequiredSkills {
			key := skill.Normalize(raw)
			if key == "" {
				continue
			}
			if d, ok := byName[key]; ok {
				d.count++
				continue
			}
			byName[key] = &demanded{display: displayName(raw), count: 1}
		}
	}

	user := map[string]struct{}{}
	for _, name := range r.SkillNames() {
		user[skill.Normalize(name)] = struct{}{}
	}

	for key, d := range byName {
		if _, ok := user[key]; ok {
			res.MatchingSkills = append(res.MatchingSkills, d.display)
		} else {
			res.MissingSkills = append(res.MissingSkills, analysis.MissingSkill{
				Name:   d.display,
				Demand: d.count,
			})
		}
	}

	sort.Strings(res.MatchingSkills)
	sort.Slice(res.MissingSkills, func(i, j int) bool {
		if res.MissingSkills[i].Demand != res.MissingSkills[j].Demand {
			return res.MissingSkills[i].Demand > res.MissingSkills[j].Demand
		}
		return res.MissingSkills[i].Name < res.MissingSkills[j].Name
	})
}

func (a *Analyzer) clusterMatch(r *resume.Resume, jobs []job.Job) (float64, int, int, error) {
	master := masterSkillList(r.SkillNames(), jobs)
	if len(master) == 0 {
		return 0, 0, 0, errNoFeatures
	}

	data := featureMatrix(r.SkillNames(), jobs, master)
	standardize(data)

	labels, err := runKMeans(data, a.clusters)
	if err != nil {
		return 0, 0, 0, err
	}

	resumeCluster := labels[0]
	inSame := 0
	for _, l := range labels[1:] {
		if l == resumeCluster {
			inSame++
		}
	}
	pct := round2(float64(inSame) / float64(len(jobs)) * 100)

	a.logger.Debug().
		Int("cluster", resumeCluster).
		Int("jobs_in_cluster", inSame).
		Int("features", len(master)).
		Msg("clustering done")
	return pct, resumeCluster, inSame, nil
}

// overlapMatch is the degradation path: the share of all demanded
// skills the resume already has.
func overlapMatch(r *resume.Resume, jobs []job.Job) float64 {
	required := map[string]struct{}{}
	for _, j := range jobs {
		for _, name := range j.RequiredSkills {
			if key := skill.Normalize(name); key != "" {
				required[key] = struct{}{}
			}
		}
	}
	if len(required) == 0 {
		return 0
	}

	matching := 0
	for _, name := range r.SkillNames() {
		if _, ok := required[skill.Normalize(name)]; ok {
			matching++
		}
	}
	return round2(float64(matching) / float64(len(required)) * 100)
}

// JobMatch scores a single posting against the resume.
type JobMatch struct {
	Job             job.Job
	MatchPercentage float64
	Matching        []string
	Missing         []string
}

// JobMatches ranks every job by its individual skill overlap, strongest
// first.
func (a *Analyzer) JobMatches(r *resume.Resume, jobs []job.Job) []JobMatch {
	user := map[string]struct{}{}
	for _, name := range r.SkillNames() {
		user[skill.Normalize(name)] = struct{}{}
	}

	out := make([]JobMatch, 0, len(jobs))
	for _, j := range jobs {
		m := JobMatch{Job: j}
		for _, raw := range j.RequiredSkills {
			if _, ok := user[skill.Normalize(raw)]; ok {
				m.Matching = append(m.Matching, displayName(raw))
			} else {
				m.Missing = append(m.Missing, displayName(raw))
			}
		}
		if len(j.RequiredSkills) > 0 {
			m.MatchPercentage = round2(float64(len(m.Matching)) / float64(len(j.RequiredSkills)) * 100)
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}

// displayName keeps explicit casing from a source ("AWS") and titles
// names that arrive normalized ("aws").
func displayName(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != skill.Normalize(raw) {
		return raw
	}
	return skill.Title(raw)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
