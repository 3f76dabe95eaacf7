package query

import (
	"strings"
	"unicode"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
)

// Parser converts a raw natural-language question into a structured Query.
// Pure: no I/O after construction, safe for concurrent use.
type Parser struct {
	rules    *Rules
	stop     map[string]struct{}
	question map[string]struct{}
	jargon   map[string]struct{}
	exclude  map[string]struct{}
}

// NewParser creates a parser over the given rule tables
func NewParser(rules *Rules) *Parser {
	return &Parser{
		rules:    rules,
		stop:     toSet(rules.StopWords),
		question: toSet(rules.QuestionWords),
		jargon:   toSet(rules.JargonWords),
		exclude:  toSet(rules.PeopleExclusions),
	}
}

// Parse extracts intent, keywords, people and a temporal hint from raw text.
// Returns ErrNoKeywords when nothing searchable remains after filtering.
func (p *Parser) Parse(raw string) (*entities.Query, error) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	q := &entities.Query{
		RawText:  raw,
		Intent:   p.classifyIntent(lower),
		Temporal: p.classifyTemporal(lower),
	}

	q.Keywords = p.extractKeywords(trimmed)
	if len(q.Keywords) == 0 {
		return nil, ucerrors.ErrNoKeywords
	}

	q.People = p.extractPeople(trimmed)
	return q, nil
}

// classifyIntent walks the ordered trigger table, first match wins. The table
// keeps specific intents (decision, action, risk) above the catch-all
// discussion triggers, which often co-occur with them.
func (p *Parser) classifyIntent(lower string) entities.Intent {
	words := toSet(tokenize(lower))
	for _, rule := range p.rules.Intents {
		for _, trigger := range rule.Triggers {
			if matchTrigger(lower, words, trigger) {
				return validIntents[rule.Intent]
			}
		}
	}
	return entities.IntentGeneric
}

// classifyTemporal matches the fixed phrase table, first match wins. Multi-word
// phrases are listed first so "last" alone cannot shadow "last week".
func (p *Parser) classifyTemporal(lower string) entities.Temporal {
	words := toSet(tokenize(lower))
	for _, rule := range p.rules.Temporal {
		for _, phrase := range rule.Phrases {
			if matchTrigger(lower, words, phrase) {
				return validTemporals[rule.Hint]
			}
		}
	}
	return entities.TemporalNone
}

// extractKeywords tokenizes on non-alphanumeric boundaries, lower-cases,
// drops stop words, question words, meeting jargon, pure numbers and short
// tokens, and returns the rest deduplicated in order of first appearance.
// Short all-caps tokens (QA, CI, UX) survive the length cut: they are
// acronyms, not noise.
func (p *Parser) extractKeywords(text string) []string {
	keywords := []string{}
	seen := map[string]struct{}{}

	for _, tok := range tokenize(text) {
		lower := strings.ToLower(tok)
		if isNumber(lower) {
			continue
		}
		if _, ok := p.stop[lower]; ok {
			continue
		}
		if _, ok := p.question[lower]; ok {
			continue
		}
		if _, ok := p.jargon[lower]; ok {
			continue
		}
		if len([]rune(lower)) < 3 && !isAcronym(tok) {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		keywords = append(keywords, lower)
	}
	return keywords
}

// extractPeople picks capitalized name-like tokens from the raw text.
// Heuristic, not NER: sentence-initial words are skipped, possessives are
// stripped ("Mike's" contributes "Mike"), common words are excluded. False
// positives are acceptable since people only feed a ranking bonus.
func (p *Parser) extractPeople(text string) []string {
	people := []string{}
	seen := map[string]struct{}{}

	fields := strings.Fields(text)
	for i, field := range fields {
		if i == 0 || endsSentence(fields[i-1]) {
			continue
		}

		name := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		name = strings.TrimSuffix(name, "'s")
		name = strings.TrimSuffix(name, "’s")

		if !isNameLike(name) {
			continue
		}
		lower := strings.ToLower(name)
		if _, ok := p.stop[lower]; ok {
			continue
		}
		if _, ok := p.question[lower]; ok {
			continue
		}
		if _, ok := p.jargon[lower]; ok {
			continue
		}
		if _, ok := p.exclude[lower]; ok {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		people = append(people, name)
	}
	return people
}

// matchTrigger matches multi-word triggers as substrings and single words
// against the query's token set, so "task" does not fire on "multitasking".
func matchTrigger(lower string, words map[string]struct{}, trigger string) bool {
	if strings.ContainsRune(trigger, ' ') {
		return strings.Contains(lower, trigger)
	}
	_, ok := words[trigger]
	return ok
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isAcronym reports whether the original token is two or more uppercase
// letters.
func isAcronym(tok string) bool {
	if len([]rune(tok)) < 2 {
		return false
	}
	for _, r := range tok {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// isNameLike: leading uppercase letter followed by lowercase letters.
func isNameLike(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func endsSentence(field string) bool {
	return strings.HasSuffix(field, ".") || strings.HasSuffix(field, "!") || strings.HasSuffix(field, "?")
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
