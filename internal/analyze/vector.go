package analyze

import (
	"sort"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// masterSkillList is the feature space: every skill seen on the resume
// or in any job, normalized and sorted so vector columns are stable.
func masterSkillList(resumeSkills []string, jobs []job.Job) []string {
	seen := map[string]struct{}{}
	for _, name := range resumeSkills {
		seen[skill.Normalize(name)] = struct{}{}
	}
	for _, j := range jobs {
		for _, name := range j.RequiredSkills {
			seen[skill.Normalize(name)] = struct{}{}
		}
	}
	delete(seen, "")

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// presenceVector encodes a skill set as ones over the master list.
func presenceVector(names []string, master []string) []float64 {
	have := make(map[string]struct{}, len(names))
	for _, name := range names {
		have[skill.Normalize(name)] = struct{}{}
	}
	vec := make([]float64, len(master))
	for i, name := range master {
		if _, ok := have[name]; ok {
			vec[i] = 1
		}
	}
	return vec
}

// featureMatrix stacks the resume vector on top of one vector per job.
// Row 0 is always the resume.
func featureMatrix(resumeSkills []string, jobs []job.Job, master []string) *mat.Dense {
	data := mat.NewDense(len(jobs)+1, len(master), nil)
	data.SetRow(0, presenceVector(resumeSkills, master))
	for i, j := range jobs {
		data.SetRow(i+1, presenceVector(j.RequiredSkills, master))
	}
	return data
}

// standardize centers and scales each column in place. Zero-variance
// columns are centered only, so constant features do not blow up.
func standardize(m *mat.Dense) {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		mean := stat.Mean(col, nil)
		std := stat.PopStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		for i := 0; i < rows; i++ {
			m.Set(i, j, (col[i]-mean)/std)
		}
	}
}
