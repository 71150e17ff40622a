package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/resume"
)

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	digitRe = regexp.MustCompile(`\d`)
)

// extractContact fills in whatever contact details the text yields.
// Resumes lead with the candidate's name, so the heuristic only trusts
// the first few lines: two to four capitalized words, no digits.
func extractContact(raw string, r *resume.Resume) {
	if m := emailRe.FindString(raw); m != "" {
		r.Email = m
	}
	if m := phoneRe.FindString(raw); m != "" {
		r.Phone = strings.TrimSpace(m)
	}
	r.ContactName = guessName(raw)
}

func guessName(raw string) string {
	seen := 0
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	if digitRe.MatchString(line) || strings.Contains(line, "@") {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		first := []rune(w)[0]
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return true
}
