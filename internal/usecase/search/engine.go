package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jordansepetys/AibaTS/internal/domain/entities"
)

// Weights holds the relevance multipliers. The values are the original
// empirically fixed constants; they are exposed as data so hosts and tests
// can tune them without code edits.
type Weights struct {
	MeetingName   float64
	Decisions     float64
	ActionItems   float64
	Risks         float64
	OpenQuestions float64
	Keywords      float64
	Transcript    float64

	// IntentBoost multiplies the contribution of the field matching a
	// non-generic query intent.
	IntentBoost float64
	// PersonBonus is the flat score added per query person found anywhere
	// in the record (5x the base unit weight).
	PersonBonus float64
	// TemporalBonus is a small additive nudge for records inside the
	// query's temporal hint window. Advisory only, never a filter.
	TemporalBonus float64
}

// DefaultWeights returns the original constants.
func DefaultWeights() Weights {
	return Weights{
		MeetingName:   3.0,
		Decisions:     2.5,
		ActionItems:   2.5,
		Risks:         2.0,
		OpenQuestions: 2.0,
		Keywords:      1.5,
		Transcript:    1.0,
		IntentBoost:   10.0,
		PersonBonus:   5.0,
		TemporalBonus: 0.5,
	}
}

// scoredFields lists the searchable fields in scoring order.
func (w Weights) scoredFields() []struct {
	name   string
	weight float64
} {
	return []struct {
		name   string
		weight float64
	}{
		{entities.FieldMeetingName, w.MeetingName},
		{entities.FieldDecisions, w.Decisions},
		{entities.FieldActionItems, w.ActionItems},
		{entities.FieldRisks, w.Risks},
		{entities.FieldOpenQuestions, w.OpenQuestions},
		{entities.FieldKeywords, w.Keywords},
		{entities.FieldTranscript, w.Transcript},
	}
}

// Result is one search call's outcome: the ranked, capped list plus the true
// number of matching records, so callers can show an "N more results" hint.
type Result struct {
	Results      []entities.ScoredResult
	TotalMatches int
}

// Engine scores records against parsed queries. It never mutates the index:
// once loaded, a ProjectIndex is an immutable snapshot for the duration of a
// search call.
type Engine struct {
	weights Weights
	now     func() time.Time
}

// NewEngine creates an engine with the given weights
func NewEngine(weights Weights) *Engine {
	return &Engine{weights: weights, now: time.Now}
}

// Search scores every record, drops zero scores, ranks and truncates to
// maxResults. Any panic during scoring is recovered here and reported as an
// error, never propagated.
func (e *Engine) Search(index *entities.ProjectIndex, q *entities.Query, maxResults int) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("scoring panic: %v", r)
		}
	}()

	if maxResults <= 0 {
		maxResults = 10
	}

	matches := []entities.ScoredResult{}
	for i := range index.Meetings {
		record := &index.Meetings[i]
		score, fields := e.scoreRecord(record, q)
		if score <= 0 {
			// A record must match at least one keyword or person to
			// appear at all.
			continue
		}
		matches = append(matches, entities.ScoredResult{
			Record:        record,
			Score:         score,
			MatchedFields: fields,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Record.Timestamp != matches[j].Record.Timestamp {
			return matches[i].Record.Timestamp > matches[j].Record.Timestamp
		}
		return matches[i].Record.MeetingID < matches[j].Record.MeetingID
	})

	total := len(matches)
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return &Result{Results: matches, TotalMatches: total}, nil
}

// scoreRecord computes the additive relevance score of one record and the set
// of fields that contributed to it.
func (e *Engine) scoreRecord(record *entities.MeetingRecord, q *entities.Query) (float64, []string) {
	total := 0.0
	matched := []string{}
	boosted := boostedFields(q.Intent)

	for _, f := range e.weights.scoredFields() {
		text := strings.ToLower(record.FieldText(f.name))
		if text == "" {
			continue
		}

		occurrences := 0
		for _, kw := range q.Keywords {
			occurrences += strings.Count(text, kw)
		}
		if occurrences == 0 {
			continue
		}

		contribution := float64(occurrences) * f.weight
		if _, ok := boosted[f.name]; ok {
			contribution *= e.weights.IntentBoost
		}
		total += contribution
		matched = append(matched, f.name)
	}

	if len(q.People) > 0 {
		allText := strings.ToLower(record.AllText())
		for _, person := range q.People {
			if strings.Contains(allText, strings.ToLower(person)) {
				total += e.weights.PersonBonus
			}
		}
	}

	// Temporal hint nudges ranking only when the record already matched
	// something.
	if total > 0 && e.inTemporalWindow(record, q.Temporal) {
		total += e.weights.TemporalBonus
	}

	return total, matched
}

// boostedFields maps a query intent to the record fields whose contribution
// gets the intent boost.
func boostedFields(intent entities.Intent) map[string]struct{} {
	fields := map[string]struct{}{}
	switch intent {
	case entities.IntentDecision:
		fields[entities.FieldDecisions] = struct{}{}
	case entities.IntentAction:
		fields[entities.FieldActionItems] = struct{}{}
	case entities.IntentRisk:
		fields[entities.FieldRisks] = struct{}{}
	case entities.IntentQuestion:
		fields[entities.FieldOpenQuestions] = struct{}{}
	case entities.IntentDiscussion:
		fields[entities.FieldTranscript] = struct{}{}
	case entities.IntentStatus:
		fields[entities.FieldActionItems] = struct{}{}
		fields[entities.FieldOpenQuestions] = struct{}{}
	}
	return fields
}

func (e *Engine) inTemporalWindow(record *entities.MeetingRecord, hint entities.Temporal) bool {
	if hint == entities.TemporalNone || record.Timestamp <= 0 {
		return false
	}
	now := e.now()
	ts := time.Unix(record.Timestamp, 0)
	switch hint {
	case entities.TemporalLastWeek:
		return now.Sub(ts) <= 7*24*time.Hour
	case entities.TemporalThisMonth:
		return ts.Year() == now.Year() && ts.Month() == now.Month()
	case entities.TemporalRecent:
		return now.Sub(ts) <= 14*24*time.Hour
	}
	return false
}
