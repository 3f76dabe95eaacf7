package query

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

// IntentRule is one ordered (triggers, intent) entry. Triggers match as
// case-insensitive substrings of the raw query.
type IntentRule struct {
	Intent   string   `yaml:"intent"`
	Triggers []string `yaml:"triggers"`
}

// TemporalRule maps trigger phrases to a temporal hint.
type TemporalRule struct {
	Hint    string   `yaml:"hint"`
	Phrases []string `yaml:"phrases"`
}

// Rules holds the parser's data-driven tables. They are externally editable:
// hosts can point QUERY_RULES_PATH at an alternative YAML file.
type Rules struct {
	Intents          []IntentRule   `yaml:"intents"`
	Temporal         []TemporalRule `yaml:"temporal"`
	StopWords        []string       `yaml:"stop_words"`
	QuestionWords    []string       `yaml:"question_words"`
	JargonWords      []string       `yaml:"jargon_words"`
	PeopleExclusions []string       `yaml:"people_exclusions"`
}

var validIntents = map[string]entities.Intent{
	string(entities.IntentDecision):   entities.IntentDecision,
	string(entities.IntentAction):     entities.IntentAction,
	string(entities.IntentRisk):       entities.IntentRisk,
	string(entities.IntentQuestion):   entities.IntentQuestion,
	string(entities.IntentStatus):     entities.IntentStatus,
	string(entities.IntentDiscussion): entities.IntentDiscussion,
}

var validTemporals = map[string]entities.Temporal{
	string(entities.TemporalRecent):    entities.TemporalRecent,
	string(entities.TemporalLastWeek):  entities.TemporalLastWeek,
	string(entities.TemporalThisMonth): entities.TemporalThisMonth,
}

// Validate rejects tables referencing unknown intent or temporal labels.
func (r *Rules) Validate() error {
	for _, ir := range r.Intents {
		if _, ok := validIntents[ir.Intent]; !ok {
			return fmt.Errorf("unknown intent %q in rules", ir.Intent)
		}
		if len(ir.Triggers) == 0 {
			return fmt.Errorf("intent %q has no triggers", ir.Intent)
		}
	}
	for _, tr := range r.Temporal {
		if _, ok := validTemporals[tr.Hint]; !ok {
			return fmt.Errorf("unknown temporal hint %q in rules", tr.Hint)
		}
	}
	return nil
}

// DefaultRules returns the embedded rule tables.
func DefaultRules() *Rules {
	rules, err := parseRules(defaultRulesYAML)
	if err != nil {
		// The embedded file ships with the binary; failing to parse it is
		// a packaging bug, not a runtime condition.
		panic(fmt.Sprintf("embedded query rules are invalid: %v", err))
	}
	return rules
}

// LoadRules reads rule tables from a YAML file. An empty path returns the
// embedded defaults.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query rules: %w", err)
	}
	return parseRules(data)
}

func parseRules(data []byte) (*Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse query rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}
