package entities

import (
	"sort"
	"time"
)

// ProjectIndex is the persisted collection of all meeting records for one
// project. One index per project; single writer at a time.
type ProjectIndex struct {
	ProjectName   string          `json:"project_name"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	TotalMeetings int             `json:"total_meetings"`
	Meetings      []MeetingRecord `json:"meetings"`
}

// NewProjectIndex creates an empty index for a project.
func NewProjectIndex(projectName string) *ProjectIndex {
	now := time.Now().Format(time.RFC3339)
	return &ProjectIndex{
		ProjectName: projectName,
		CreatedAt:   now,
		UpdatedAt:   now,
		Meetings:    []MeetingRecord{},
	}
}

// Find returns the record with the given meeting ID, or nil.
func (idx *ProjectIndex) Find(meetingID string) *MeetingRecord {
	for i := range idx.Meetings {
		if idx.Meetings[i].MeetingID == meetingID {
			return &idx.Meetings[i]
		}
	}
	return nil
}

// Upsert replaces the record with the same meeting ID, or appends it. The
// meeting_id uniqueness invariant is maintained here.
func (idx *ProjectIndex) Upsert(record MeetingRecord) {
	for i := range idx.Meetings {
		if idx.Meetings[i].MeetingID == record.MeetingID {
			idx.Meetings[i] = record
			return
		}
	}
	idx.Meetings = append(idx.Meetings, record)
}

// Touch recomputes total_meetings, re-sorts meetings newest first for display
// and stamps updated_at. Called after every successful mutation.
func (idx *ProjectIndex) Touch() {
	sort.SliceStable(idx.Meetings, func(i, j int) bool {
		return idx.Meetings[i].Timestamp > idx.Meetings[j].Timestamp
	})
	idx.TotalMeetings = len(idx.Meetings)
	idx.UpdatedAt = time.Now().Format(time.RFC3339)
}

// UpdatedTime parses updated_at; the zero time when unset or unparseable.
func (idx *ProjectIndex) UpdatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, idx.UpdatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
