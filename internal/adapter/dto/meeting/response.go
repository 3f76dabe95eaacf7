package meeting

// ExcerptResponse is one labelled excerpt justifying a result
type ExcerptResponse struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// ResultResponse is one ranked meeting in an answer
type ResultResponse struct {
	MeetingID      string            `json:"meeting_id"`
	MeetingName    string            `json:"meeting_name"`
	Date           string            `json:"date"`
	ProjectName    string            `json:"project_name"`
	WordCount      int               `json:"word_count"`
	Score          float64           `json:"score"`
	MatchedFields  []string          `json:"matched_fields"`
	Excerpts       []ExcerptResponse `json:"excerpts"`
	SourcePath     string            `json:"source_path"`
	TranscriptPath string            `json:"transcript_path,omitempty"`
}

// AskResponse is the full answer to one question
type AskResponse struct {
	Question     string   `json:"question"`
	Intent       string   `json:"intent"`
	Keywords     []string `json:"keywords"`
	People       []string `json:"people,omitempty"`
	TemporalHint string   `json:"temporal_hint,omitempty"`

	Results      []*ResultResponse `json:"results"`
	TotalMatches int               `json:"total_matches"`
	// MoreResults is the count of matches beyond the returned page, for an
	// "N more results" indicator.
	MoreResults int `json:"more_results"`
	// Message is set when the ranked list is empty; it echoes the query.
	Message string `json:"message,omitempty"`
}

// MeetingResponse is the full view of one indexed meeting
type MeetingResponse struct {
	MeetingID       string   `json:"meeting_id"`
	MeetingName     string   `json:"meeting_name"`
	Date            string   `json:"date"`
	ProjectName     string   `json:"project_name"`
	Timestamp       int64    `json:"timestamp"`
	DurationMinutes *int     `json:"duration_minutes,omitempty"`
	Decisions       []string `json:"decisions"`
	ActionItems     []string `json:"action_items"`
	Risks           []string `json:"risks"`
	OpenQuestions   []string `json:"open_questions"`
	Keywords        []string `json:"keywords"`
	WordCount       int      `json:"word_count"`
	SourcePath      string   `json:"source_path"`
	TranscriptPath  string   `json:"transcript_path,omitempty"`
}

// IndexStatsResponse summarizes one project index
type IndexStatsResponse struct {
	ProjectName   string `json:"project_name"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	TotalMeetings int    `json:"total_meetings"`
	LatestMeeting string `json:"latest_meeting,omitempty"`
	LatestDate    string `json:"latest_date,omitempty"`
}

// BuildFailureResponse is one skipped meeting in a build report
type BuildFailureResponse struct {
	MeetingID string `json:"meeting_id"`
	Reason    string `json:"reason"`
}

// BuildResponse reports an index build
type BuildResponse struct {
	RunID         string                 `json:"run_id"`
	ProjectName   string                 `json:"project_name"`
	Processed     int                    `json:"processed"`
	Skipped       int                    `json:"skipped"`
	TotalMeetings int                    `json:"total_meetings"`
	UpdatedAt     string                 `json:"updated_at"`
	Failures      []BuildFailureResponse `json:"failures"`
}

// UpdateResponse reports a single-meeting upsert
type UpdateResponse struct {
	Updated       bool   `json:"updated"`
	MeetingID     string `json:"meeting_id"`
	TotalMeetings int    `json:"total_meetings,omitempty"`
}

// ProjectListResponse lists projects with a persisted index
type ProjectListResponse struct {
	Projects []string `json:"projects"`
}
