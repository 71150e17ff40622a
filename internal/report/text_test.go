package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"
)

func sampleResult() *analysis.Result {
	cluster := 1
	return &analysis.Result{
		ResumeName:      "resume.pdf",
		Domain:          "Software Developer",
		JobCount:        50,
		MatchPercentage: 64.29,
		MatchingSkills:  []string{"Docker", "Python"},
		MissingSkills: []analysis.MissingSkill{
			{Name: "Kubernetes", Demand: 9},
			{Name: "AWS", Demand: 5},
		},
		ClusterID:         &cluster,
		JobsInSameCluster: 32,
		Method:            analysis.MethodKMeans,
	}
}

func TestSummary(t *testing.T) {
	got := Summary(sampleResult(), 6)

	for _, want := range []string{
		"ANALYSIS SUMMARY",
		"Resume: resume.pdf",
		"Jobs Analyzed: 50",
		"Overall Match: 64.29%",
		"Matching Skills (2):",
		"  Docker, Python",
		"Missing Skills (2):",
		"  Kubernetes, AWS",
		"Recommended Resources: 6",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	rule := strings.Repeat("=", 60)
	if !strings.HasPrefix(got, rule+"\n") {
		t.Error("summary does not open with the rule line")
	}
	if !strings.HasSuffix(got, rule) {
		t.Error("summary does not close with the rule line")
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "analysis_results.txt")
	plan := &learning.Path{Congratulatory: true, MatchPercentage: 64.29}

	if err := WriteText(path, sampleResult(), plan); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	got := string(raw)

	for _, want := range []string{
		"JOB MARKET ANALYZER - ANALYSIS REPORT",
		"Generated: ",
		"Resume: resume.pdf",
		"Jobs Analyzed: 50",
		"Overall Match: 64.29%",
		"SKILLS SUMMARY",
		"Skills You Have (2):",
		"Docker, Python",
		"Skills to Learn (2):",
		"Kubernetes, AWS",
		"LEARNING PATH",
		"CONGRATULATIONS!",
		"End of Report",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}

	wide := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)
	if !strings.HasPrefix(got, wide+"\n") {
		t.Error("report does not open with the wide rule")
	}
	if !strings.Contains(got, thin+"\nSKILLS SUMMARY\n"+thin) {
		t.Error("skills summary not framed by thin rules")
	}
}

func TestWriteText_CreatesParentDirectories(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "a", "b", "c", "report.txt")

	err := WriteText(path, sampleResult(), &learning.Path{Congratulatory: true})
	if err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report missing: %v", err)
	}
}
