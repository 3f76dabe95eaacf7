package presenter

import (
	"fmt"

	"github.com/jordansepetys/AibaTS/internal/adapter/dto/meeting"
	"github.com/jordansepetys/AibaTS/internal/domain/entities"
	"github.com/jordansepetys/AibaTS/internal/usecase/indexer"
	"github.com/jordansepetys/AibaTS/internal/usecase/search"
)

var excerptLabels = map[string]string{
	entities.FieldDecisions:     "Decision",
	entities.FieldActionItems:   "Action Item",
	entities.FieldRisks:         "Risk",
	entities.FieldOpenQuestions: "Open Question",
	entities.FieldTranscript:    "Transcript",
}

// excerptOrder returns the field display order for an intent: the field the
// question asked about comes first, the rest keep a fixed order.
func excerptOrder(intent entities.Intent) []string {
	base := []string{
		entities.FieldDecisions,
		entities.FieldActionItems,
		entities.FieldRisks,
		entities.FieldOpenQuestions,
		entities.FieldTranscript,
	}

	var first string
	switch intent {
	case entities.IntentDecision:
		first = entities.FieldDecisions
	case entities.IntentAction, entities.IntentStatus:
		first = entities.FieldActionItems
	case entities.IntentRisk:
		first = entities.FieldRisks
	case entities.IntentQuestion:
		first = entities.FieldOpenQuestions
	case entities.IntentDiscussion:
		first = entities.FieldTranscript
	default:
		return base
	}

	ordered := []string{first}
	for _, f := range base {
		if f != first {
			ordered = append(ordered, f)
		}
	}
	return ordered
}

// ToAskResponse converts a search answer into the display structure. Pure
// data transformation; rendering is the caller's concern.
func ToAskResponse(answer *search.Answer) *meeting.AskResponse {
	resp := &meeting.AskResponse{
		Question:     answer.Query.RawText,
		Intent:       string(answer.Query.Intent),
		Keywords:     answer.Query.Keywords,
		People:       answer.Query.People,
		TemporalHint: string(answer.Query.Temporal),
		Results:      make([]*meeting.ResultResponse, 0, len(answer.Results)),
		TotalMatches: answer.TotalMatches,
	}

	order := excerptOrder(answer.Query.Intent)
	for i := range answer.Results {
		resp.Results = append(resp.Results, toResultResponse(&answer.Results[i], order))
	}

	if resp.MoreResults = answer.TotalMatches - len(answer.Results); resp.MoreResults < 0 {
		resp.MoreResults = 0
	}
	if len(resp.Results) == 0 {
		resp.Message = fmt.Sprintf(
			"No meetings found for %q. Try different keywords or check if the project has meetings indexed.",
			answer.Query.RawText,
		)
	}
	return resp
}

func toResultResponse(r *search.AnswerResult, order []string) *meeting.ResultResponse {
	resp := &meeting.ResultResponse{
		MeetingID:      r.Record.MeetingID,
		MeetingName:    r.Record.MeetingName,
		Date:           r.Record.Date,
		ProjectName:    r.Record.ProjectName,
		WordCount:      r.Record.WordCount,
		Score:          r.Score,
		MatchedFields:  r.MatchedFields,
		Excerpts:       []meeting.ExcerptResponse{},
		SourcePath:     r.Record.JSONFilePath,
		TranscriptPath: r.Record.TranscriptFilePath,
	}

	for _, field := range order {
		text, ok := r.Excerpts[field]
		if !ok {
			continue
		}
		resp.Excerpts = append(resp.Excerpts, meeting.ExcerptResponse{
			Field: field,
			Label: excerptLabels[field],
			Text:  text,
		})
	}
	return resp
}

// ToMeetingResponse converts one record to its full display view
func ToMeetingResponse(record *entities.MeetingRecord) *meeting.MeetingResponse {
	if record == nil {
		return nil
	}
	return &meeting.MeetingResponse{
		MeetingID:       record.MeetingID,
		MeetingName:     record.MeetingName,
		Date:            record.Date,
		ProjectName:     record.ProjectName,
		Timestamp:       record.Timestamp,
		DurationMinutes: record.DurationMinutes,
		Decisions:       record.Decisions,
		ActionItems:     record.ActionItems,
		Risks:           record.Risks,
		OpenQuestions:   record.OpenQuestions,
		Keywords:        record.Keywords,
		WordCount:       record.WordCount,
		SourcePath:      record.JSONFilePath,
		TranscriptPath:  record.TranscriptFilePath,
	}
}

// ToIndexStatsResponse summarizes a project index for display
func ToIndexStatsResponse(index *entities.ProjectIndex) *meeting.IndexStatsResponse {
	resp := &meeting.IndexStatsResponse{
		ProjectName:   index.ProjectName,
		CreatedAt:     index.CreatedAt,
		UpdatedAt:     index.UpdatedAt,
		TotalMeetings: index.TotalMeetings,
	}
	if len(index.Meetings) > 0 {
		// Meetings are kept sorted newest first.
		resp.LatestMeeting = index.Meetings[0].MeetingName
		resp.LatestDate = index.Meetings[0].Date
	}
	return resp
}

// ToBuildResponse converts a build report for display
func ToBuildResponse(report *indexer.BuildReport) *meeting.BuildResponse {
	resp := &meeting.BuildResponse{
		RunID:    report.RunID.String(),
		Failures: make([]meeting.BuildFailureResponse, 0, len(report.Failures)),
	}
	if report.Index != nil {
		resp.ProjectName = report.Index.ProjectName
		resp.TotalMeetings = report.Index.TotalMeetings
		resp.UpdatedAt = report.Index.UpdatedAt
	}
	resp.Processed = report.Processed
	resp.Skipped = report.Skipped
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, meeting.BuildFailureResponse{
			MeetingID: f.MeetingID,
			Reason:    f.Reason,
		})
	}
	return resp
}
