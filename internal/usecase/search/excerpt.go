package search

import (
	"strings"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
)

// transcriptWindow is the number of characters kept on each side of the
// first keyword hit in a transcript excerpt.
const transcriptWindow = 150

// ExtractExcerpts produces one representative excerpt per matched field.
// List fields contribute the entry with the highest keyword overlap; the
// transcript contributes a keyword-centred window trimmed to word boundaries.
// The transcript excerpt is omitted when no keyword actually occurs there
// (the field can score through weight aggregation without a literal hit) so
// no misleading empty excerpt is emitted. The meeting_name and keywords
// fields are already part of the display record and carry no excerpt.
func ExtractExcerpts(result *entities.ScoredResult, q *entities.Query) map[string]string {
	record := result.Record
	excerpts := map[string]string{}

	listFields := []struct {
		name    string
		entries []string
	}{
		{entities.FieldDecisions, record.Decisions},
		{entities.FieldActionItems, record.ActionItems},
		{entities.FieldRisks, record.Risks},
		{entities.FieldOpenQuestions, record.OpenQuestions},
	}

	for _, f := range listFields {
		if !result.Matched(f.name) {
			continue
		}
		if entry, ok := bestEntry(f.entries, q.Keywords); ok {
			excerpts[f.name] = entry
		}
	}

	if result.Matched(entities.FieldTranscript) {
		if excerpt, ok := transcriptExcerpt(record.FullTranscript, q.Keywords); ok {
			excerpts[entities.FieldTranscript] = excerpt
		}
	}

	return excerpts
}

// bestEntry returns the list entry overlapping the most query keywords.
// Ties keep the earlier entry; zero overlap yields nothing.
func bestEntry(entries []string, keywords []string) (string, bool) {
	best := ""
	bestOverlap := 0
	for _, entry := range entries {
		lower := strings.ToLower(entry)
		overlap := 0
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				overlap++
			}
		}
		if overlap > bestOverlap {
			best = entry
			bestOverlap = overlap
		}
	}
	return best, bestOverlap > 0
}

// transcriptExcerpt cuts a window around the earliest keyword occurrence.
func transcriptExcerpt(transcript string, keywords []string) (string, bool) {
	lower := strings.ToLower(transcript)

	pos := -1
	for _, kw := range keywords {
		if idx := strings.Index(lower, kw); idx != -1 && (pos == -1 || idx < pos) {
			pos = idx
		}
	}
	if pos == -1 {
		return "", false
	}

	start := pos - transcriptWindow
	if start < 0 {
		start = 0
	}
	end := pos + transcriptWindow
	if end > len(transcript) {
		end = len(transcript)
	}

	// Trim partial words at the cut points.
	if start > 0 {
		if idx := strings.IndexAny(transcript[start:end], " \t\n"); idx != -1 {
			start += idx + 1
		}
	}
	if end < len(transcript) {
		if idx := strings.LastIndexAny(transcript[start:end], " \t\n"); idx != -1 && start+idx > pos {
			end = start + idx
		}
	}

	excerpt := strings.TrimSpace(transcript[start:end])
	if start > 0 {
		excerpt = "..." + excerpt
	}
	if end < len(transcript) {
		excerpt = excerpt + "..."
	}
	return excerpt, true
}
