package query

import (
	"errors"
	"testing"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(DefaultRules())
}

func TestParse_DecisionIntentWithAcronym(t *testing.T) {
	p := newTestParser(t)

	q, err := p.Parse("When did we decide about QA?")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if q.Intent != entities.IntentDecision {
		t.Fatalf("expected decision intent, got %s", q.Intent)
	}
	if len(q.Keywords) != 2 || q.Keywords[0] != "decide" || q.Keywords[1] != "qa" {
		t.Fatalf("unexpected keywords %v", q.Keywords)
	}
	// QA is all caps, so it is an acronym, not a person.
	if len(q.People) != 0 {
		t.Fatalf("expected no people, got %v", q.People)
	}
}

func TestParse_IntentPriorityOrder(t *testing.T) {
	p := newTestParser(t)

	// "discuss" and "decide" both appear; the decision rule is listed
	// first and must win.
	q, err := p.Parse("What did we discuss and decide about the logo?")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if q.Intent != entities.IntentDecision {
		t.Fatalf("expected decision intent, got %s", q.Intent)
	}
}

func TestParse_IntentClassification(t *testing.T) {
	p := newTestParser(t)

	cases := []struct {
		question string
		intent   entities.Intent
	}{
		{"Who was assigned the migration work?", entities.IntentAction},
		{"Is the timeline a risk for the rollout?", entities.IntentRisk},
		{"Is anything still unclear about billing?", entities.IntentQuestion},
		{"How is the redesign progress?", entities.IntentStatus},
		{"Did anyone mention the budget?", entities.IntentDiscussion},
		{"Tell me everything regarding onboarding", entities.IntentGeneric},
	}
	for _, tc := range cases {
		q, err := p.Parse(tc.question)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.question, err)
		}
		if q.Intent != tc.intent {
			t.Fatalf("%q: expected intent %s, got %s", tc.question, tc.intent, q.Intent)
		}
	}
}

func TestParse_PeopleExtraction(t *testing.T) {
	p := newTestParser(t)

	q, err := p.Parse("What is Sarah working on?")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(q.People) != 1 || q.People[0] != "Sarah" {
		t.Fatalf("expected [Sarah], got %v", q.People)
	}
}

func TestParse_PossessiveStripped(t *testing.T) {
	p := newTestParser(t)

	q, err := p.Parse("What are Mike's tasks?")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(q.People) != 1 || q.People[0] != "Mike" {
		t.Fatalf("expected [Mike], got %v", q.People)
	}
}

func TestParse_SentenceInitialCapitalSkipped(t *testing.T) {
	p := newTestParser(t)

	// "Deploy" opens the question and "Friday" follows a period. Both are
	// capitalized, neither is a person.
	q, err := p.Parse("Deploy planning was covered. Friday deadlines too")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(q.People) != 0 {
		t.Fatalf("expected no people, got %v", q.People)
	}
}

func TestParse_PeopleExclusions(t *testing.T) {
	p := newTestParser(t)

	q, err := p.Parse("What did the Team decide about the Project?")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(q.People) != 0 {
		t.Fatalf("expected excluded words to produce no people, got %v", q.People)
	}
}

func TestParse_TemporalHints(t *testing.T) {
	p := newTestParser(t)

	cases := []struct {
		question string
		hint     entities.Temporal
	}{
		{"What did we cover last week?", entities.TemporalLastWeek},
		{"Any decisions this month about pricing?", entities.TemporalThisMonth},
		{"What happened recently with hiring?", entities.TemporalRecent},
		{"What was decided about pricing?", entities.TemporalNone},
	}
	for _, tc := range cases {
		q, err := p.Parse(tc.question)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.question, err)
		}
		if q.Temporal != tc.hint {
			t.Fatalf("%q: expected temporal %q, got %q", tc.question, tc.hint, q.Temporal)
		}
	}
}

func TestParse_NoKeywords(t *testing.T) {
	p := newTestParser(t)

	for _, raw := range []string{"What is the", "???", "   ", "did we when"} {
		_, err := p.Parse(raw)
		if !errors.Is(err, ucerrors.ErrNoKeywords) {
			t.Fatalf("%q: expected ErrNoKeywords, got %v", raw, err)
		}
	}
}

func TestParse_KeywordFiltering(t *testing.T) {
	p := newTestParser(t)

	q, err := p.Parse("When did the meeting discuss the 2024 budget budget?")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	// "meeting" is jargon, "2024" is a number, "budget" deduplicates.
	if len(q.Keywords) != 1 || q.Keywords[0] != "budget" {
		t.Fatalf("expected [budget], got %v", q.Keywords)
	}
}

func TestParse_KeywordsPreserveFirstAppearanceOrder(t *testing.T) {
	p := newTestParser(t)

	q, err := p.Parse("zebra falcon apple zebra")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := []string{"zebra", "falcon", "apple"}
	if len(q.Keywords) != len(want) {
		t.Fatalf("expected %v, got %v", want, q.Keywords)
	}
	for i := range want {
		if q.Keywords[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, q.Keywords)
		}
	}
}
