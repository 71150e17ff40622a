package skill

import "strings"

// Categories a skill can belong to. Technical is the catch-all for
// dictionary terms without a more specific bucket.
const (
	CategoryProgrammingLanguage = "Programming Language"
	CategoryFrontendFramework   = "Frontend Framework"
	CategoryBackendFramework    = "Backend Framework"
	CategoryDatabase            = "Database"
	CategoryCloudPlatform       = "Cloud Platform"
	CategoryDevOpsTool          = "DevOps Tool"
	CategoryMachineLearning     = "Machine Learning"
	CategorySoftSkill           = "Soft Skill"
	CategoryTechnical           = "Technical"
)

type Skill struct {
	Name      string
	Category  string
	Frequency int
}

// Normalize maps a skill name to its identity form. Matching and set
// operations work on normalized names; display uses Title.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Title renders a normalized skill name for display. Multi-word names
// are title-cased per word ("machine learning" -> "Machine Learning").
func Title(name string) string {
	words := strings.Fields(strings.TrimSpace(name))
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}

// Names extracts normalized names from a skill slice.
func Names(skills []Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, Normalize(s.Name))
	}
	return out
}
