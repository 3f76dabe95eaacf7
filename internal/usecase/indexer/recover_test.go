package indexer

import (
	"errors"
	"testing"

	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
)

func TestParseNotes_PlainObject(t *testing.T) {
	data := []byte(`{
		"decisions": ["use the blue logo"],
		"action_items": ["Sarah to mock up the landing page"],
		"risks": [],
		"open_questions": ["what about mobile?"]
	}`)

	notes, err := ParseNotes(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(notes.Decisions) != 1 || notes.Decisions[0] != "use the blue logo" {
		t.Fatalf("unexpected decisions %v", notes.Decisions)
	}
	if len(notes.OpenQuestions) != 1 {
		t.Fatalf("unexpected open questions %v", notes.OpenQuestions)
	}
}

func TestParseNotes_MalformedFieldsBecomeEmpty(t *testing.T) {
	data := []byte(`{
		"decisions": "not a list",
		"action_items": [1, 2, "review metrics"],
		"risks": null
	}`)

	notes, err := ParseNotes(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(notes.Decisions) != 0 {
		t.Fatalf("expected empty decisions, got %v", notes.Decisions)
	}
	// Non-string list entries are skipped, not fatal.
	if len(notes.ActionItems) != 1 || notes.ActionItems[0] != "review metrics" {
		t.Fatalf("unexpected action items %v", notes.ActionItems)
	}
	if len(notes.Risks) != 0 {
		t.Fatalf("expected empty risks, got %v", notes.Risks)
	}
}

func TestParseNotes_ErrorEnvelopeWithFencedJSON(t *testing.T) {
	data := []byte(`{
		"error": "model call truncated",
		"raw_output": "Here are the notes:\n` + "```json" + `\n{\"decisions\": [\"ship on Friday\"]}\n` + "```" + `\ndone"
	}`)

	notes, err := ParseNotes(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(notes.Decisions) != 1 || notes.Decisions[0] != "ship on Friday" {
		t.Fatalf("unexpected decisions %v", notes.Decisions)
	}
}

func TestParseNotes_ErrorEnvelopeWithMarkerText(t *testing.T) {
	data := []byte(`{
		"error": "bad json",
		"raw_output": "Decision: ship on Friday\n- Action item: update the runbook\nRisk: rollback untested"
	}`)

	notes, err := ParseNotes(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(notes.Decisions) != 1 || notes.Decisions[0] != "ship on Friday" {
		t.Fatalf("unexpected decisions %v", notes.Decisions)
	}
	if len(notes.ActionItems) != 1 || notes.ActionItems[0] != "update the runbook" {
		t.Fatalf("unexpected action items %v", notes.ActionItems)
	}
	if len(notes.Risks) != 1 {
		t.Fatalf("unexpected risks %v", notes.Risks)
	}
}

func TestParseNotes_FreeTextMarkers(t *testing.T) {
	data := []byte("meeting summary\n* Decision: adopt weekly demos\nOpen question: who owns QA?\n")

	notes, err := ParseNotes(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(notes.Decisions) != 1 || notes.Decisions[0] != "adopt weekly demos" {
		t.Fatalf("unexpected decisions %v", notes.Decisions)
	}
	if len(notes.OpenQuestions) != 1 || notes.OpenQuestions[0] != "who owns QA?" {
		t.Fatalf("unexpected open questions %v", notes.OpenQuestions)
	}
}

func TestParseNotes_Unrecoverable(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("completely unstructured prose with no markers"),
		[]byte(`{"error": "failed"}`),
		[]byte(`{"error": "failed", "raw_output": "still nothing structured"}`),
	} {
		_, err := ParseNotes(data)
		if !errors.Is(err, ucerrors.ErrArtifactParse) {
			t.Fatalf("%s: expected ErrArtifactParse, got %v", data, err)
		}
	}
}
