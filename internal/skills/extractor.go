package skills

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"

	"github.com/jdkato/prose/v2"
	"github.com/rs/zerolog"
)

// Extractor finds dictionary skills in free text. Two passes run per
// extraction: word-boundary scanning over the whole dictionary, and a
// POS-tag pass that recovers noun mentions the scanner can miss in
// heavily formatted text. Results are unioned.
type Extractor struct {
	patterns map[string]*regexp.Regexp
	logger   zerolog.Logger
}

func NewExtractor(logger zerolog.Logger) *Extractor {
	patterns := make(map[string]*regexp.Regexp, len(dictionary))
	for _, term := range dictionary {
		patterns[term] = mentionPattern(term)
	}
	return &Extractor{patterns: patterns, logger: logger}
}

func mentionPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[^a-z0-9])` + regexp.QuoteMeta(term) + `([^a-z0-9]|$)`)
}

// Extract returns the unique skills mentioned in text with display
// names, categories and mention frequencies, sorted frequency desc and
// name asc within equal frequency. Texts under 10 characters yield nil.
func (e *Extractor) Extract(text string) []skill.Skill {
	if len(strings.TrimSpace(text)) < 10 {
		e.logger.Warn().Msg("text too short for skill extraction")
		return nil
	}

	textLower := strings.ToLower(text)

	found := e.scanDictionary(textLower)
	for name := range e.scanNouns(text) {
		found[name] = struct{}{}
	}

	out := make([]skill.Skill, 0, len(found))
	for name := range found {
		freq := e.countMentions(textLower, name)
		if freq == 0 {
			freq = 1
		}
		out = append(out, skill.Skill{
			Name:      skill.Title(name),
			Category:  CategoryOf(name),
			Frequency: freq,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Frequency != out[j].Frequency {
			return out[i].Frequency > out[j].Frequency
		}
		return out[i].Name < out[j].Name
	})

	e.logger.Debug().Int("skills", len(out)).Msg("skill extraction done")
	return out
}

// RequiredSkills scans job text and returns the normalized names of
// every dictionary skill it mentions. Used on sanitized descriptions.
func (e *Extractor) RequiredSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	found := e.scanDictionary(strings.ToLower(text))
	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (e *Extractor) scanDictionary(textLower string) map[string]struct{} {
	found := map[string]struct{}{}
	for term, re := range e.patterns {
		if _, ok := excludedWords[term]; ok {
			continue
		}
		if re.MatchString(textLower) {
			found[term] = struct{}{}
		}
	}
	return found
}

// scanNouns tags the text and keeps NOUN/PROPN tokens plus adjacent
// noun pairs that are dictionary terms. Tagging failures degrade to the
// dictionary-only result.
func (e *Extractor) scanNouns(text string) map[string]struct{} {
	found := map[string]struct{}{}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		e.logger.Warn().Err(err).Msg("pos tagging unavailable, dictionary pass only")
		return found
	}

	tokens := doc.Tokens()
	isNoun := func(tag string) bool { return strings.HasPrefix(tag, "NN") }

	for i, tok := range tokens {
		if !isNoun(tok.Tag) {
			continue
		}
		word := skill.Normalize(tok.Text)
		if e.isDictionaryTerm(word) {
			found[word] = struct{}{}
		}
		// two-token phrases like "machine learning"
		if i+1 < len(tokens) && isNoun(tokens[i+1].Tag) {
			phrase := word + " " + skill.Normalize(tokens[i+1].Text)
			if e.isDictionaryTerm(phrase) {
				found[phrase] = struct{}{}
			}
		}
	}
	return found
}

func (e *Extractor) isDictionaryTerm(name string) bool {
	if _, excluded := excludedWords[name]; excluded {
		return false
	}
	_, ok := e.patterns[name]
	return ok
}

func (e *Extractor) countMentions(textLower, term string) int {
	re, ok := e.patterns[term]
	if !ok {
		re = mentionPattern(term)
	}
	return len(re.FindAllStringIndex(textLower, -1))
}
