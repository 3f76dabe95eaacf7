package indexer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
	ucerrors "github.com/jordansepetys/AibaTS/internal/usecase/errors"
)

// ParseNotes decodes a structured-notes artifact. Three shapes are accepted,
// in order:
//  1. the plain contract object with decisions/action_items/risks/
//     open_questions lists (absent or malformed fields become empty lists),
//  2. an upstream failure envelope {"error": ..., "raw_output": ...} whose
//     raw_output carries the real JSON inside a markdown code fence,
//  3. free text scanned for decision/action/risk/question line markers.
//
// Only when all three yield nothing does parsing fail; the builder then skips
// the meeting and records the failure.
func ParseNotes(data []byte) (entities.MeetingNotes, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not a JSON object at all; a raw-text marker scan is the last
		// resort.
		if notes := scanMarkers(string(data)); !notes.IsEmpty() {
			return notes, nil
		}
		return entities.MeetingNotes{}, fmt.Errorf("%w: %v", ucerrors.ErrArtifactParse, err)
	}

	if _, failed := raw["error"]; failed {
		if output, ok := raw["raw_output"]; ok {
			return recoverFromRawOutput(output)
		}
		return entities.MeetingNotes{}, fmt.Errorf("%w: error envelope without raw_output", ucerrors.ErrArtifactParse)
	}

	notes := entities.MeetingNotes{
		Decisions:     stringList(raw["decisions"]),
		ActionItems:   stringList(raw["action_items"]),
		Risks:         stringList(raw["risks"]),
		OpenQuestions: stringList(raw["open_questions"]),
	}
	return notes, nil
}

// recoverFromRawOutput extracts the JSON body from a markdown code fence in
// the model's raw output, falling back to a marker scan of the text itself.
func recoverFromRawOutput(output json.RawMessage) (entities.MeetingNotes, error) {
	var text string
	if err := json.Unmarshal(output, &text); err != nil {
		return entities.MeetingNotes{}, fmt.Errorf("%w: raw_output is not text", ucerrors.ErrArtifactParse)
	}

	if body := extractFencedJSON(text); body != "" {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal([]byte(body), &raw); err == nil {
			return entities.MeetingNotes{
				Decisions:     stringList(raw["decisions"]),
				ActionItems:   stringList(raw["action_items"]),
				Risks:         stringList(raw["risks"]),
				OpenQuestions: stringList(raw["open_questions"]),
			}, nil
		}
	}

	if notes := scanMarkers(text); !notes.IsEmpty() {
		return notes, nil
	}
	return entities.MeetingNotes{}, fmt.Errorf("%w: no recoverable notes in raw_output", ucerrors.ErrArtifactParse)
}

// extractFencedJSON pulls the content of a ```json ... ``` block, or a bare
// ``` block, out of model output.
func extractFencedJSON(content string) string {
	content = strings.TrimSpace(content)

	start := strings.Index(content, "```json")
	if start != -1 {
		content = content[start+len("```json"):]
	} else if start = strings.Index(content, "```"); start != -1 {
		content = content[start+len("```"):]
	} else {
		return ""
	}

	if end := strings.Index(content, "```"); end != -1 {
		content = content[:end]
	}
	return strings.TrimSpace(content)
}

// scanMarkers picks structured items out of free text by line prefix:
// "decision:", "action:"/"action item:", "risk:", "question:"/"open question:".
// Leading list bullets are ignored.
func scanMarkers(text string) entities.MeetingNotes {
	notes := entities.MeetingNotes{
		Decisions:     []string{},
		ActionItems:   []string{},
		Risks:         []string{},
		OpenQuestions: []string{},
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		lower := strings.ToLower(line)

		switch {
		case cutMarker(&line, lower, "decision:"):
			notes.Decisions = append(notes.Decisions, line)
		case cutMarker(&line, lower, "action item:"), cutMarker(&line, lower, "action:"):
			notes.ActionItems = append(notes.ActionItems, line)
		case cutMarker(&line, lower, "risk:"):
			notes.Risks = append(notes.Risks, line)
		case cutMarker(&line, lower, "open question:"), cutMarker(&line, lower, "question:"):
			notes.OpenQuestions = append(notes.OpenQuestions, line)
		}
	}
	return notes
}

// cutMarker strips the marker prefix from line in place when present.
func cutMarker(line *string, lower, marker string) bool {
	if !strings.HasPrefix(lower, marker) {
		return false
	}
	trimmed := strings.TrimSpace((*line)[len(marker):])
	if trimmed == "" {
		return false
	}
	*line = trimmed
	return true
}

// stringList decodes a JSON list of strings leniently: absent or malformed
// values are empty lists, list entries of other types are skipped.
func stringList(raw json.RawMessage) []string {
	if raw == nil {
		return []string{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}
