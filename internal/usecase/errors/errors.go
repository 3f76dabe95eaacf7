package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal error")
)

// Index errors
var (
	ErrSnapshotNotFound = errors.New("index snapshot not found")
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrArtifactMissing  = errors.New("meeting artifact missing")
	ErrArtifactParse    = errors.New("meeting artifact unparseable")
	ErrPersistFailed    = errors.New("failed to persist index snapshot")
)

// Query errors
var (
	ErrNoKeywords = errors.New("no usable keywords in query")
)
