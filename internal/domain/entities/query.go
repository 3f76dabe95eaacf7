package entities

// Intent is the classified purpose of a natural-language query.
type Intent string

const (
	IntentDecision   Intent = "decision"
	IntentAction     Intent = "action"
	IntentRisk       Intent = "risk"
	IntentQuestion   Intent = "question"
	IntentStatus     Intent = "status"
	IntentDiscussion Intent = "discussion"
	IntentGeneric    Intent = "general"
)

// Temporal is an advisory time hint extracted from a query. It nudges ranking
// and display, it is never a hard filter.
type Temporal string

const (
	TemporalNone      Temporal = ""
	TemporalRecent    Temporal = "recent"
	TemporalLastWeek  Temporal = "last_week"
	TemporalThisMonth Temporal = "this_month"
)

// Query is the structured form of one natural-language question. Ephemeral;
// produced per question by the query parser.
type Query struct {
	RawText  string
	Intent   Intent
	Keywords []string
	People   []string
	Temporal Temporal
}

// ScoredResult pairs a record with its relevance score for one search call.
// The record is shared and read-only.
type ScoredResult struct {
	Record        *MeetingRecord
	Score         float64
	MatchedFields []string
}

// Matched reports whether the named field contributed to the score.
func (r *ScoredResult) Matched(field string) bool {
	for _, f := range r.MatchedFields {
		if f == field {
			return true
		}
	}
	return false
}
