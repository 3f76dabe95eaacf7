package entities

// MeetingNotes is the structured-notes input contract from the summarization
// collaborator. Absent or malformed fields are treated as empty lists, not
// errors.
type MeetingNotes struct {
	Decisions     []string `json:"decisions"`
	ActionItems   []string `json:"action_items"`
	Risks         []string `json:"risks"`
	OpenQuestions []string `json:"open_questions"`
}

// Normalize replaces nil lists with empty ones.
func (n *MeetingNotes) Normalize() {
	if n.Decisions == nil {
		n.Decisions = []string{}
	}
	if n.ActionItems == nil {
		n.ActionItems = []string{}
	}
	if n.Risks == nil {
		n.Risks = []string{}
	}
	if n.OpenQuestions == nil {
		n.OpenQuestions = []string{}
	}
}

// IsEmpty reports whether no structured field carries content.
func (n *MeetingNotes) IsEmpty() bool {
	return len(n.Decisions) == 0 && len(n.ActionItems) == 0 &&
		len(n.Risks) == 0 && len(n.OpenQuestions) == 0
}
