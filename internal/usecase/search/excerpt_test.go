package search

import (
	"strings"
	"testing"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
)

func TestExtractExcerpts_PicksBestListEntry(t *testing.T) {
	record := &entities.MeetingRecord{
		MeetingID: "m1",
		Decisions: []string{
			"ship the beta on Friday",
			"use the blue logo on the landing page",
		},
	}
	result := &entities.ScoredResult{
		Record:        record,
		Score:         5,
		MatchedFields: []string{entities.FieldDecisions},
	}
	q := &entities.Query{Keywords: []string{"logo", "landing"}}

	excerpts := ExtractExcerpts(result, q)
	if got := excerpts[entities.FieldDecisions]; got != record.Decisions[1] {
		t.Fatalf("expected highest-overlap entry, got %q", got)
	}
}

func TestExtractExcerpts_TranscriptWindow(t *testing.T) {
	prefix := strings.Repeat("before ", 60)
	suffix := strings.Repeat("after ", 60)
	transcript := prefix + "the budget discussion started here " + suffix

	record := &entities.MeetingRecord{MeetingID: "m1", FullTranscript: transcript}
	result := &entities.ScoredResult{
		Record:        record,
		Score:         1,
		MatchedFields: []string{entities.FieldTranscript},
	}
	q := &entities.Query{Keywords: []string{"budget"}}

	excerpts := ExtractExcerpts(result, q)
	excerpt, ok := excerpts[entities.FieldTranscript]
	if !ok {
		t.Fatal("expected a transcript excerpt")
	}
	if !strings.Contains(excerpt, "budget") {
		t.Fatalf("excerpt does not contain the keyword: %q", excerpt)
	}
	if !strings.HasPrefix(excerpt, "...") || !strings.HasSuffix(excerpt, "...") {
		t.Fatalf("expected ellipsis on both cut sides, got %q", excerpt)
	}
	// Window plus markers, never the whole transcript.
	if len(excerpt) >= len(transcript) {
		t.Fatalf("excerpt not truncated: %d chars", len(excerpt))
	}
}

func TestExtractExcerpts_ShortTranscriptKeptWhole(t *testing.T) {
	record := &entities.MeetingRecord{
		MeetingID:      "m1",
		FullTranscript: "short chat about the budget",
	}
	result := &entities.ScoredResult{
		Record:        record,
		Score:         1,
		MatchedFields: []string{entities.FieldTranscript},
	}
	q := &entities.Query{Keywords: []string{"budget"}}

	excerpts := ExtractExcerpts(result, q)
	if got := excerpts[entities.FieldTranscript]; got != record.FullTranscript {
		t.Fatalf("expected whole transcript without markers, got %q", got)
	}
}

func TestExtractExcerpts_NoLiteralHitNoExcerpt(t *testing.T) {
	record := &entities.MeetingRecord{
		MeetingID:      "m1",
		FullTranscript: "nothing matching here",
	}
	result := &entities.ScoredResult{
		Record:        record,
		Score:         1,
		MatchedFields: []string{entities.FieldTranscript, entities.FieldDecisions},
	}
	q := &entities.Query{Keywords: []string{"budget"}}

	excerpts := ExtractExcerpts(result, q)
	if len(excerpts) != 0 {
		t.Fatalf("expected no excerpts, got %v", excerpts)
	}
}

func TestExtractExcerpts_NameAndKeywordFieldsCarryNone(t *testing.T) {
	record := &entities.MeetingRecord{
		MeetingID:   "m1",
		MeetingName: "Budget review",
		Keywords:    []string{"budget"},
	}
	result := &entities.ScoredResult{
		Record:        record,
		Score:         1,
		MatchedFields: []string{entities.FieldMeetingName, entities.FieldKeywords},
	}
	q := &entities.Query{Keywords: []string{"budget"}}

	excerpts := ExtractExcerpts(result, q)
	if len(excerpts) != 0 {
		t.Fatalf("expected no excerpts for name/keywords fields, got %v", excerpts)
	}
}
