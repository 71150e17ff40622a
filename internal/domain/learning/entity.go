package learning

import (
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
)

const (
	PlatformUdemy    = "Udemy"
	PlatformCoursera = "Coursera"
	PlatformYouTube  = "YouTube"
	PlatformOther    = "Other"
)

const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
	DifficultyAllLevels    = "All Levels"
)

type Resource struct {
	ID            int64
	SkillName     string
	Title         string
	URL           string
	Platform      string
	DurationWeeks int
	Difficulty    string
	Description   string
	Rating        float64
	Price         string
}

// Week groups the skills to study in one week with their resources and
// achievement milestones.
type Week struct {
	Number     int
	Skills     []analysis.MissingSkill
	Resources  map[string][]Resource
	Milestones []string
}

// SkillNames lists the week's focus skills in display form.
func (w Week) SkillNames() []string {
	names := make([]string, 0, len(w.Skills))
	for _, s := range w.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Path is a generated study plan. Congratulatory paths carry no weeks:
// the resume already covers every required skill.
type Path struct {
	Weeks           []Week
	MatchPercentage float64
	TotalMissing    int
	Congratulatory  bool
	GeneratedAt     time.Time
}

// ResourceCount totals the recommended resources across all weeks.
func (p *Path) ResourceCount() int {
	n := 0
	for _, w := range p.Weeks {
		for _, resources := range w.Resources {
			n += len(resources)
		}
	}
	return n
}
