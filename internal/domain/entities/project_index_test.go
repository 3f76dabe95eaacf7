package entities

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProjectIndex_UpsertKeepsIDsUnique(t *testing.T) {
	index := NewProjectIndex("p")
	index.Upsert(MeetingRecord{MeetingID: "m1", MeetingName: "first"})
	index.Upsert(MeetingRecord{MeetingID: "m1", MeetingName: "replaced"})
	index.Upsert(MeetingRecord{MeetingID: "m2"})
	index.Touch()

	if index.TotalMeetings != 2 {
		t.Fatalf("expected 2 meetings, got %d", index.TotalMeetings)
	}
	if got := index.Find("m1"); got == nil || got.MeetingName != "replaced" {
		t.Fatalf("upsert did not replace: %+v", got)
	}
}

func TestProjectIndex_TouchSortsNewestFirst(t *testing.T) {
	index := NewProjectIndex("p")
	index.Upsert(MeetingRecord{MeetingID: "m-old", Timestamp: 100})
	index.Upsert(MeetingRecord{MeetingID: "m-new", Timestamp: 300})
	index.Upsert(MeetingRecord{MeetingID: "m-mid", Timestamp: 200})
	index.Touch()

	want := []string{"m-new", "m-mid", "m-old"}
	for i, id := range want {
		if index.Meetings[i].MeetingID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, index.Meetings[i].MeetingID)
		}
	}
}

func TestMeetingRecord_SnapshotFieldNames(t *testing.T) {
	record := MeetingRecord{MeetingID: "m1"}
	record.Normalize()

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)
	for _, field := range []string{
		"meeting_id", "meeting_name", "full_transcript", "word_count",
		"json_file_path", "transcript_file_path", "action_items",
		"open_questions", "duration_minutes",
	} {
		if !strings.Contains(body, `"`+field+`"`) {
			t.Fatalf("snapshot missing field %q: %s", field, body)
		}
	}
	// Lists serialize as arrays, never null.
	if strings.Contains(body, `"decisions":null`) {
		t.Fatalf("normalized record serialized null list: %s", body)
	}
}

func TestMeetingRecord_Validate(t *testing.T) {
	record := MeetingRecord{
		MeetingID:      "m1",
		FullTranscript: "three words here",
		WordCount:      3,
	}
	if err := record.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	record.WordCount = 5
	if err := record.Validate(); err == nil {
		t.Fatal("expected word count mismatch error")
	}

	record = MeetingRecord{}
	if err := record.Validate(); err == nil {
		t.Fatal("expected missing meeting_id error")
	}
}

func TestCountWords(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"hello  world\nagain", 3},
	}
	for _, tc := range cases {
		if got := CountWords(tc.text); got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.text, tc.want, got)
		}
	}
}

func TestDateFromTimestamp(t *testing.T) {
	if got := DateFromTimestamp(0); got != "unknown" {
		t.Fatalf("expected unknown for zero, got %q", got)
	}
	if got := DateFromTimestamp(-5); got != "unknown" {
		t.Fatalf("expected unknown for negative, got %q", got)
	}
	if got := DateFromTimestamp(1700000000); got == "unknown" || len(got) != len("2006-01-02") {
		t.Fatalf("unexpected date %q", got)
	}
}
