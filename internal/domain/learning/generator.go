package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"

	"github.com/rs/zerolog"
)

const (
	// maxPathSkills caps the plan at the eight most-demanded gaps; two
	// skills per week fills the four weeks.
	maxPathSkills    = 8
	skillsPerWeek    = 2
	pathWeeks        = 4
	resourcesPerGoal = 3
)

// ResourceFinder looks up curated learning resources for one skill,
// best rated first.
type ResourceFinder interface {
	ResourcesForSkill(ctx context.Context, skillName string, limit int) ([]Resource, error)
}

type Generator struct {
	resources ResourceFinder
	logger    zerolog.Logger
}

func NewGenerator(resources ResourceFinder, logger zerolog.Logger) *Generator {
	return &Generator{resources: resources, logger: logger}
}

// Generate builds the study plan for a finished analysis. A resume with
// no gaps gets a congratulatory path with zero weeks. Resource lookups
// degrade to an empty list per skill, so a cold catalog still yields a
// usable plan.
func (g *Generator) Generate(ctx context.Context, res *analysis.Result) (*Path, error) {
	path := &Path{
		MatchPercentage: res.MatchPercentage,
		TotalMissing:    len(res.MissingSkills),
		GeneratedAt:     time.Now(),
	}

	if len(res.MissingSkills) == 0 {
		g.logger.Info().Msg("no skill gaps, generating congratulatory path")
		path.Congratulatory = true
		return path, nil
	}

	priority := res.TopMissing(maxPathSkills)
	g.logger.Info().Int("skills", len(priority)).Msg("generating learning path")

	found := make(map[string][]Resource, len(priority))
	for _, s := range priority {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resources, err := g.resources.ResourcesForSkill(ctx, s.Name, resourcesPerGoal)
		if err != nil {
			g.logger.Warn().Err(err).Str("skill", s.Name).Msg("resource lookup failed")
			continue
		}
		found[s.Name] = resources
	}

	for week := 1; week <= pathWeeks; week++ {
		start := (week - 1) * skillsPerWeek
		if start >= len(priority) {
			break
		}
		end := start + skillsPerWeek
		if end > len(priority) {
			end = len(priority)
		}
		weekSkills := priority[start:end]

		w := Week{
			Number:     week,
			Skills:     weekSkills,
			Resources:  make(map[string][]Resource, len(weekSkills)),
			Milestones: milestonesFor(weekSkills),
		}
		for _, s := range weekSkills {
			w.Resources[s.Name] = found[s.Name]
		}
		path.Weeks = append(path.Weeks, w)
	}

	return path, nil
}

func milestonesFor(skills []analysis.MissingSkill) []string {
	milestones := make([]string, 0, len(skills)*2+2)
	for _, s := range skills {
		milestones = append(milestones,
			fmt.Sprintf("Complete %s tutorial/course", s.Name),
			fmt.Sprintf("Build a small project using %s", s.Name),
		)
	}
	milestones = append(milestones,
		"Document your learning progress",
		"Update your resume with new skills",
	)
	return milestones
}
