package meeting

// AskRequest carries one natural-language question against a project index
type AskRequest struct {
	Question string `json:"question" validate:"required,min=1,max=500"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=50"`
}

// UpdateMeetingRequest upserts one just-saved meeting into the index
type UpdateMeetingRequest struct {
	MeetingID      string `json:"meeting_id" validate:"required,max=255,pathsegment"`
	NotesPath      string `json:"notes_path" validate:"required,min=1"`
	TranscriptPath string `json:"transcript_path,omitempty"`
}
