package search

import (
	"testing"
	"time"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
)

func testIndex(records ...entities.MeetingRecord) *entities.ProjectIndex {
	index := entities.NewProjectIndex("test-project")
	for _, r := range records {
		index.Upsert(r)
	}
	index.TotalMeetings = len(index.Meetings)
	return index
}

func keywordQuery(keywords ...string) *entities.Query {
	return &entities.Query{
		RawText:  "test",
		Intent:   entities.IntentGeneric,
		Keywords: keywords,
	}
}

func TestSearch_ZeroScoreExcluded(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	index := testIndex(
		entities.MeetingRecord{MeetingID: "m1", FullTranscript: "we talked about the budget"},
		entities.MeetingRecord{MeetingID: "m2", FullTranscript: "nothing relevant here"},
	)

	result, err := engine.Search(index, keywordQuery("budget"), 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Results) != 1 || result.Results[0].Record.MeetingID != "m1" {
		t.Fatalf("expected only m1, got %d results", len(result.Results))
	}
	if result.TotalMatches != 1 {
		t.Fatalf("expected 1 total match, got %d", result.TotalMatches)
	}
}

func TestSearch_FieldWeightOrdering(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	index := testIndex(
		entities.MeetingRecord{MeetingID: "transcript-hit", FullTranscript: "budget"},
		entities.MeetingRecord{MeetingID: "decision-hit", Decisions: []string{"budget approved"}},
		entities.MeetingRecord{MeetingID: "name-hit", MeetingName: "Budget review"},
	)

	result, err := engine.Search(index, keywordQuery("budget"), 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(result.Results))
	}
	// meeting_name (3.0) > decisions (2.5) > transcript (1.0)
	want := []string{"name-hit", "decision-hit", "transcript-hit"}
	for i, id := range want {
		if result.Results[i].Record.MeetingID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, result.Results[i].Record.MeetingID)
		}
	}
}

func TestSearch_IntentBoostDominates(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	index := testIndex(
		// Many transcript hits, no decision hit.
		entities.MeetingRecord{MeetingID: "chatty", FullTranscript: "logo logo logo logo logo"},
		// One hit in the boosted decisions field.
		entities.MeetingRecord{MeetingID: "decisive", Decisions: []string{"use the new logo"}},
	)

	q := keywordQuery("logo")
	q.Intent = entities.IntentDecision

	result, err := engine.Search(index, q, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	// decisions: 1 * 2.5 * 10 = 25 beats transcript: 5 * 1.0 = 5
	if result.Results[0].Record.MeetingID != "decisive" {
		t.Fatalf("expected boosted decision hit first, got %s", result.Results[0].Record.MeetingID)
	}
	if !result.Results[0].Matched(entities.FieldDecisions) {
		t.Fatalf("expected decisions in matched fields, got %v", result.Results[0].MatchedFields)
	}
}

func TestSearch_PersonBonusAloneMatches(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	index := testIndex(
		entities.MeetingRecord{MeetingID: "m1", ActionItems: []string{"Sarah to draft the proposal"}},
		entities.MeetingRecord{MeetingID: "m2", ActionItems: []string{"review metrics"}},
	)

	q := keywordQuery("nonexistentterm")
	q.People = []string{"Sarah"}

	result, err := engine.Search(index, q, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Results) != 1 || result.Results[0].Record.MeetingID != "m1" {
		t.Fatalf("expected person match only, got %d results", len(result.Results))
	}
	if result.Results[0].Score != DefaultWeights().PersonBonus {
		t.Fatalf("expected score %.1f, got %.1f", DefaultWeights().PersonBonus, result.Results[0].Score)
	}
}

func TestSearch_TieBreaksByTimestampThenID(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	index := testIndex(
		entities.MeetingRecord{MeetingID: "m-old", Timestamp: 100, FullTranscript: "budget"},
		entities.MeetingRecord{MeetingID: "m-new", Timestamp: 200, FullTranscript: "budget"},
		entities.MeetingRecord{MeetingID: "m-b", Timestamp: 100, FullTranscript: "budget"},
	)

	result, err := engine.Search(index, keywordQuery("budget"), 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	want := []string{"m-new", "m-b", "m-old"}
	for i, id := range want {
		if result.Results[i].Record.MeetingID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, result.Results[i].Record.MeetingID)
		}
	}
}

func TestSearch_TruncatesButReportsTotal(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	index := testIndex(
		entities.MeetingRecord{MeetingID: "m1", FullTranscript: "budget"},
		entities.MeetingRecord{MeetingID: "m2", FullTranscript: "budget"},
		entities.MeetingRecord{MeetingID: "m3", FullTranscript: "budget"},
	)

	result, err := engine.Search(index, keywordQuery("budget"), 2)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}
	if result.TotalMatches != 3 {
		t.Fatalf("expected 3 total matches, got %d", result.TotalMatches)
	}
}

func TestSearch_TemporalNudgeOnlyInsideWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	engine := NewEngine(DefaultWeights())
	engine.now = func() time.Time { return now }

	index := testIndex(
		entities.MeetingRecord{MeetingID: "m-recent", Timestamp: now.Add(-2 * 24 * time.Hour).Unix(), FullTranscript: "budget"},
		entities.MeetingRecord{MeetingID: "m-stale", Timestamp: now.Add(-60 * 24 * time.Hour).Unix(), FullTranscript: "budget"},
	)

	q := keywordQuery("budget")
	q.Temporal = entities.TemporalLastWeek

	result, err := engine.Search(index, q, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	bonus := DefaultWeights().TemporalBonus
	if got := result.Results[0].Score - result.Results[1].Score; got != bonus {
		t.Fatalf("expected score gap %.2f, got %.2f", bonus, got)
	}
	// The hint never filters: the stale record still appears.
	if result.TotalMatches != 2 {
		t.Fatalf("expected 2 matches, got %d", result.TotalMatches)
	}
}

func TestSearch_DefaultsMaxResults(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	records := make([]entities.MeetingRecord, 0, 15)
	for i := 0; i < 15; i++ {
		records = append(records, entities.MeetingRecord{
			MeetingID:      string(rune('a'+i)) + "-meeting",
			FullTranscript: "budget",
		})
	}
	index := testIndex(records...)

	result, err := engine.Search(index, keywordQuery("budget"), 0)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(result.Results) != 10 {
		t.Fatalf("expected default cap of 10, got %d", len(result.Results))
	}
	if result.TotalMatches != 15 {
		t.Fatalf("expected 15 total matches, got %d", result.TotalMatches)
	}
}
