package resume

import (
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"
)

type Resume struct {
	FilePath    string
	RawText     string
	ContactName string
	Email       string
	Phone       string
	Skills      []skill.Skill
	ParsedAt    time.Time
}

// SkillNames returns the normalized names of the extracted skills.
func (r *Resume) SkillNames() []string {
	return skill.Names(r.Skills)
}
