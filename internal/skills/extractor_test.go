package skills

import (
	"strings"
	"testing"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"

	"github.com/rs/zerolog"
)

func newTestExtractor() *Extractor {
	return NewExtractor(zerolog.Nop())
}

func TestExtract_DictionaryTerms(t *testing.T) {
	e := newTestExtractor()

	text := `Senior engineer with 5 years of Python and Java experience.
Built services with Docker and deployed to AWS. Python is my main language.`

	skills := e.Extract(text)
	if len(skills) == 0 {
		t.Fatalf("expected skills, got none")
	}

	byName := make(map[string]skill.Skill, len(skills))
	for _, s := range skills {
		byName[s.Name] = s
	}

	python, ok := byName["Python"]
	if !ok {
		t.Fatalf("python not extracted, got %v", names(skills))
	}
	if python.Frequency != 2 {
		t.Errorf("python frequency = %d, want 2", python.Frequency)
	}
	if python.Category != skill.CategoryProgrammingLanguage {
		t.Errorf("python category = %q, want %q", python.Category, skill.CategoryProgrammingLanguage)
	}

	if _, ok := byName["Docker"]; !ok {
		t.Errorf("docker not extracted")
	}
	if _, ok := byName["Aws"]; !ok {
		t.Errorf("aws not extracted")
	}
}

func TestExtract_SortedByFrequencyThenName(t *testing.T) {
	e := newTestExtractor()

	text := "Python Python Python. Java Java. Docker. Azure."
	skills := e.Extract(text)
	if len(skills) < 4 {
		t.Fatalf("expected at least 4 skills, got %d", len(skills))
	}

	if skills[0].Name != "Python" {
		t.Errorf("first skill = %q, want Python", skills[0].Name)
	}
	if skills[1].Name != "Java" {
		t.Errorf("second skill = %q, want Java", skills[1].Name)
	}

	for i := 1; i < len(skills); i++ {
		if skills[i].Frequency > skills[i-1].Frequency {
			t.Fatalf("skills not sorted by frequency: %v", skills)
		}
		if skills[i].Frequency == skills[i-1].Frequency && skills[i].Name < skills[i-1].Name {
			t.Fatalf("equal frequencies not sorted by name: %v", skills)
		}
	}
}

func TestExtract_WordBoundaries(t *testing.T) {
	e := newTestExtractor()

	// "javascript" must not satisfy a "java" mention by substring.
	skills := e.Extract("Frontend developer writing JavaScript every day since 2019.")

	for _, s := range skills {
		if s.Name == "Java" {
			t.Fatalf("java extracted from javascript text")
		}
	}

	found := false
	for _, s := range skills {
		if s.Name == "Javascript" {
			found = true
		}
	}
	if !found {
		t.Fatalf("javascript not extracted, got %v", names(skills))
	}
}

func TestExtract_ShortTextYieldsNothing(t *testing.T) {
	e := newTestExtractor()
	if got := e.Extract("py"); got != nil {
		t.Fatalf("expected nil for short text, got %v", got)
	}
	if got := e.Extract("   "); got != nil {
		t.Fatalf("expected nil for blank text, got %v", got)
	}
}

func TestExtract_MultiWordSkill(t *testing.T) {
	e := newTestExtractor()

	skills := e.Extract("Research focus: machine learning and deep learning for NLP applications.")
	byName := map[string]bool{}
	for _, s := range skills {
		byName[s.Name] = true
	}
	if !byName["Machine Learning"] {
		t.Errorf("machine learning not extracted, got %v", names(skills))
	}
	if !byName["Deep Learning"] {
		t.Errorf("deep learning not extracted, got %v", names(skills))
	}
}

func TestRequiredSkills(t *testing.T) {
	e := newTestExtractor()

	got := e.RequiredSkills("We need Python, Django and PostgreSQL experience. Docker a plus.")
	want := map[string]bool{"python": true, "django": true, "postgresql": true, "docker": true}

	if len(got) < len(want) {
		t.Fatalf("RequiredSkills returned %v, want at least %d skills", got, len(want))
	}
	for _, name := range got {
		if name != strings.ToLower(name) {
			t.Errorf("required skill %q not normalized", name)
		}
	}
	have := map[string]bool{}
	for _, name := range got {
		have[name] = true
	}
	for name := range want {
		if !have[name] {
			t.Errorf("required skill %q missing from %v", name, got)
		}
	}
}

func TestRequiredSkills_EmptyText(t *testing.T) {
	e := newTestExtractor()
	if got := e.RequiredSkills("  "); got != nil {
		t.Fatalf("expected nil for empty text, got %v", got)
	}
}

func TestCategoryOf_Fallback(t *testing.T) {
	if got := CategoryOf("python"); got != skill.CategoryProgrammingLanguage {
		t.Errorf("CategoryOf(python) = %q", got)
	}
	if got := CategoryOf("definitely-not-a-skill"); got != skill.CategoryTechnical {
		t.Errorf("CategoryOf fallback = %q, want %q", got, skill.CategoryTechnical)
	}
}

func names(skills []skill.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}
