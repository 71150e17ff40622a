package job

import "time"

type Job struct {
	ID             string
	Title          string
	Company        string
	Location       string
	Description    string
	RequiredSkills []string
	SalaryMin      float64
	SalaryMax      float64
	URL            string
	Source         string
	PostedAt       *time.Time
}

// Requires reports whether the job lists the normalized skill name.
func (j Job) Requires(name string) bool {
	for _, s := range j.RequiredSkills {
		if s == name {
			return true
		}
	}
	return false
}
