package entities

import (
	"fmt"
	"strings"
	"time"
)

// Record field names. These double as the matched-field labels reported by the
// search engine and as excerpt-map keys, so they must stay in sync with the
// snapshot JSON tags below.
const (
	FieldMeetingName   = "meeting_name"
	FieldDecisions     = "decisions"
	FieldActionItems   = "action_items"
	FieldRisks         = "risks"
	FieldOpenQuestions = "open_questions"
	FieldKeywords      = "keywords"
	FieldTranscript    = "full_transcript"
)

// MeetingRecord is one meeting's indexed facts and metadata inside a project
// index. The JSON tags are a durable contract: previously built index files
// must keep loading unchanged.
type MeetingRecord struct {
	MeetingID       string `json:"meeting_id"`
	Timestamp       int64  `json:"timestamp"`
	Date            string `json:"date"`
	MeetingName     string `json:"meeting_name"`
	DurationMinutes *int   `json:"duration_minutes"`
	ProjectName     string `json:"project_name"`

	Decisions     []string `json:"decisions"`
	ActionItems   []string `json:"action_items"`
	Risks         []string `json:"risks"`
	OpenQuestions []string `json:"open_questions"`
	FullTranscript string  `json:"full_transcript"`

	JSONFilePath       string `json:"json_file_path"`
	TranscriptFilePath string `json:"transcript_file_path"`

	WordCount int      `json:"word_count"`
	Keywords  []string `json:"keywords"`
}

// CountWords is the pure derivation of word_count from a transcript:
// whitespace-token count.
func CountWords(transcript string) int {
	return len(strings.Fields(transcript))
}

// Validate checks record invariants before the record enters an index.
func (m *MeetingRecord) Validate() error {
	if m.MeetingID == "" {
		return fmt.Errorf("meeting record missing meeting_id")
	}
	if m.WordCount < 0 {
		return fmt.Errorf("meeting %s: negative word count", m.MeetingID)
	}
	if m.DurationMinutes != nil && *m.DurationMinutes < 0 {
		return fmt.Errorf("meeting %s: negative duration", m.MeetingID)
	}
	if got := CountWords(m.FullTranscript); got != m.WordCount {
		return fmt.Errorf("meeting %s: word_count %d does not match transcript (%d)", m.MeetingID, m.WordCount, got)
	}
	return nil
}

// Normalize replaces nil sequences with empty ones so the snapshot always
// serializes arrays, never null.
func (m *MeetingRecord) Normalize() {
	if m.Decisions == nil {
		m.Decisions = []string{}
	}
	if m.ActionItems == nil {
		m.ActionItems = []string{}
	}
	if m.Risks == nil {
		m.Risks = []string{}
	}
	if m.OpenQuestions == nil {
		m.OpenQuestions = []string{}
	}
	if m.Keywords == nil {
		m.Keywords = []string{}
	}
}

// FieldText returns the searchable text of one record field. List fields are
// joined with spaces; unknown field names return the empty string.
func (m *MeetingRecord) FieldText(field string) string {
	switch field {
	case FieldMeetingName:
		return m.MeetingName
	case FieldDecisions:
		return strings.Join(m.Decisions, " ")
	case FieldActionItems:
		return strings.Join(m.ActionItems, " ")
	case FieldRisks:
		return strings.Join(m.Risks, " ")
	case FieldOpenQuestions:
		return strings.Join(m.OpenQuestions, " ")
	case FieldKeywords:
		return strings.Join(m.Keywords, " ")
	case FieldTranscript:
		return m.FullTranscript
	}
	return ""
}

// AllText concatenates every searchable field, used for person matching.
func (m *MeetingRecord) AllText() string {
	parts := []string{
		m.MeetingName,
		strings.Join(m.Decisions, " "),
		strings.Join(m.ActionItems, " "),
		strings.Join(m.Risks, " "),
		strings.Join(m.OpenQuestions, " "),
		strings.Join(m.Keywords, " "),
		m.FullTranscript,
	}
	return strings.Join(parts, " ")
}

// DateFromTimestamp derives the calendar date string stored alongside the
// timestamp. A zero timestamp has no date.
func DateFromTimestamp(ts int64) string {
	if ts <= 0 {
		return "unknown"
	}
	return time.Unix(ts, 0).Format("2006-01-02")
}
