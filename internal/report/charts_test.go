package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/analyze"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/job"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"

	"github.com/rs/zerolog"
)

func sampleMatches() []analyze.JobMatch {
	return []analyze.JobMatch{
		{Job: job.Job{Title: "A"}, MatchPercentage: 100},
		{Job: job.Job{Title: "B"}, MatchPercentage: 52.5},
		{Job: job.Job{Title: "C"}, MatchPercentage: 0},
	}
}

func sampleSkills() []skill.Skill {
	return []skill.Skill{
		{Name: "Python", Category: skill.CategoryProgrammingLanguage},
		{Name: "Docker", Category: skill.CategoryDevOpsTool},
		{Name: "Go", Category: skill.CategoryProgrammingLanguage},
	}
}

func TestRenderAll_WritesEveryChart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	c := NewCharts(dir, zerolog.Nop())

	written, err := c.RenderAll(sampleResult(), sampleMatches(), sampleSkills())
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}

	wantFiles := []string{
		"skill_match.html",
		"missing_skills.html",
		"match_distribution.html",
		"skill_categories.html",
	}
	if len(written) != len(wantFiles) {
		t.Fatalf("wrote %d charts, want %d: %v", len(written), len(wantFiles), written)
	}
	for i, name := range wantFiles {
		if filepath.Base(written[i]) != name {
			t.Errorf("written[%d] = %q, want %q", i, written[i], name)
		}
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("chart %s not on disk: %v", name, err)
		}
		if !strings.Contains(string(raw), "echarts") {
			t.Errorf("chart %s does not look like an echarts page", name)
		}
	}
}

func TestRenderAll_SkipsChartsWithoutData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	c := NewCharts(dir, zerolog.Nop())

	empty := &analysis.Result{ResumeName: "resume.pdf"}
	written, err := c.RenderAll(empty, nil, nil)
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if len(written) != 0 {
		t.Fatalf("wrote %d charts with no data: %v", len(written), written)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("charts dir missing: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("charts dir has %d files, want none", len(entries))
	}
}

func TestRenderAll_PartialData(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	c := NewCharts(dir, zerolog.Nop())

	res := &analysis.Result{
		ResumeName:     "resume.pdf",
		MatchingSkills: []string{"Python"},
	}
	written, err := c.RenderAll(res, nil, nil)
	if err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("wrote %d charts, want just the skill match: %v", len(written), written)
	}
	if filepath.Base(written[0]) != "skill_match.html" {
		t.Errorf("written = %q, want skill_match.html", written[0])
	}
}
