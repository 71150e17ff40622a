// Package report renders analysis output: the saved text report and
// the interactive HTML charts.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/learning"
)

const (
	wideRule    = 70
	summaryRule = 60
)

// Summary renders the ANALYSIS SUMMARY block printed when an analysis
// finishes.
func Summary(res *analysis.Result, resourceCount int) string {
	rule := strings.Repeat("=", summaryRule)

	missing := make([]string, 0, len(res.MissingSkills))
	for _, m := range res.MissingSkills {
		missing = append(missing, m.Name)
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("ANALYSIS SUMMARY\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Resume: %s\n", res.ResumeName)
	fmt.Fprintf(&b, "Jobs Analyzed: %d\n", res.JobCount)
	fmt.Fprintf(&b, "Overall Match: %.2f%%\n\n", res.MatchPercentage)
	fmt.Fprintf(&b, "Matching Skills (%d):\n", len(res.MatchingSkills))
	fmt.Fprintf(&b, "  %s\n\n", strings.Join(res.MatchingSkills, ", "))
	fmt.Fprintf(&b, "Missing Skills (%d):\n", len(missing))
	fmt.Fprintf(&b, "  %s\n\n", strings.Join(missing, ", "))
	fmt.Fprintf(&b, "Recommended Resources: %d\n", resourceCount)
	b.WriteString(rule)

	return b.String()
}

// WriteText exports the full report file: header, skills summary,
// learning path, footer.
func WriteText(path string, res *analysis.Result, plan *learning.Path) error {
	rule := strings.Repeat("=", wideRule)
	thin := strings.Repeat("-", wideRule)

	missing := make([]string, 0, len(res.MissingSkills))
	for _, m := range res.MissingSkills {
		missing = append(missing, m.Name)
	}

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("JOB MARKET ANALYZER - ANALYSIS REPORT\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Resume: %s\n", res.ResumeName)
	fmt.Fprintf(&b, "Jobs Analyzed: %d\n", res.JobCount)
	fmt.Fprintf(&b, "Overall Match: %.2f%%\n\n", res.MatchPercentage)

	b.WriteString(thin + "\n")
	b.WriteString("SKILLS SUMMARY\n")
	b.WriteString(thin + "\n\n")
	fmt.Fprintf(&b, "Skills You Have (%d):\n", len(res.MatchingSkills))
	fmt.Fprintf(&b, "%s\n\n", strings.Join(res.MatchingSkills, ", "))
	fmt.Fprintf(&b, "Skills to Learn (%d):\n", len(missing))
	fmt.Fprintf(&b, "%s\n\n", strings.Join(missing, ", "))

	b.WriteString(thin + "\n")
	b.WriteString("LEARNING PATH\n")
	b.WriteString(thin + "\n\n")
	b.WriteString(plan.FormatText())

	b.WriteString("\n\n" + rule + "\n")
	b.WriteString("End of Report\n")
	b.WriteString(rule + "\n")

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
