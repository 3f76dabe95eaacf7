package repositories

import (
	"context"
	"time"
)

// ArtifactPair references one meeting's source artifacts: a structured-notes
// JSON file and an optional transcript. Paths are opaque to the core except
// for reading and link display.
type ArtifactPair struct {
	MeetingID      string
	NotesPath      string
	TranscriptPath string
	ModTime        time.Time
}

// ArtifactSource enumerates and reads meeting artifacts for index builds.
type ArtifactSource interface {
	// Scan lists all meeting artifact pairs, keyed by meeting ID derived
	// from the notes file name.
	Scan(ctx context.Context) ([]ArtifactPair, error)
	// ReadNotes returns the raw bytes of a structured-notes file.
	ReadNotes(ctx context.Context, path string) ([]byte, error)
	// ReadTranscript returns the transcript text; empty string when the
	// path is empty or the file does not exist.
	ReadTranscript(ctx context.Context, path string) (string, error)
}
