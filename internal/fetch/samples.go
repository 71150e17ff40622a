package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"

	"github.com/rs/zerolog"
)

type sampleTemplate struct {
	title     string
	company   string
	location  string
	skills    []string
	salaryMin float64
}

// Sample sets keyed by domain keyword. They are deliberately small:
// repeated templates still give the clustering enough signal to place
// the resume, and the skill lists carry the domain's core stack.
var sampleSets = map[string][]sampleTemplate{
	"software": {
		{title: "Senior Software Engineer", company: "Tech Corp", location: "USA", skills: []string{"Python", "Java", "Docker"}, salaryMin: 100000},
		{title: "Python Developer", company: "Data Systems", location: "USA", skills: []string{"Python", "Django", "PostgreSQL"}, salaryMin: 100000},
	},
	"data": {
		{title: "Data Scientist", company: "AI Labs", location: "USA", skills: []string{"Python", "ML", "TensorFlow"}},
	},
	"web": {
		{title: "Frontend Developer", company: "Web Studio", location: "Remote", skills: []string{"JavaScript", "React"}},
	},
	"devops": {
		{title: "DevOps Engineer", company: "Cloud Inc", location: "USA", skills: []string{"Docker", "Kubernetes", "AWS"}},
	},
}

// SampleSource serves built-in postings so the pipeline still works
// offline or without API credentials. It never fails.
type SampleSource struct {
	logger zerolog.Logger
}

func NewSampleSource(logger zerolog.Logger) *SampleSource {
	return &SampleSource{logger: logger}
}

func (s *SampleSource) Name() string { return "samples" }

func (s *SampleSource) Fetch(ctx context.Context, domain string, count int) ([]job.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = 1
	}

	templates := templatesFor(domain)
	s.logger.Info().Str("domain", domain).Int("count", count).Msg("using sample jobs")

	jobs := make([]job.Job, 0, count)
	for i := 0; i < count; i++ {
		t := templates[i%len(templates)]
		jobs = append(jobs, job.Job{
			ID:             fmt.Sprintf("sample-%d", i+1),
			Title:          t.title,
			Company:        t.company,
			Location:       t.location,
			Description:    fmt.Sprintf("We are hiring a %s.", t.title),
			RequiredSkills: append([]string(nil), t.skills...),
			SalaryMin:      t.salaryMin,
			URL:            "https://example.com/job",
			Source:         s.Name(),
		})
	}
	return jobs, nil
}

func templatesFor(domain string) []sampleTemplate {
	domain = strings.ToLower(domain)
	for _, key := range []string{"data", "devops", "web"} {
		if strings.Contains(domain, key) {
			return sampleSets[key]
		}
	}
	return sampleSets["software"]
}
