package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the custom error type carried across the application boundary.
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

// Query Errors

// ErrInvalidQuery is returned when no usable keywords remain after filtering.
// The message is user-facing and suggests more specific terms.
func ErrInvalidQuery(rawText string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_QUERY_INVALID,
		Message:  "No searchable terms found in your query. Try asking about specific topics, people, or decisions.",
	}.WithDetail("query", rawText)
}

// ErrSearchFault wraps an unexpected internal error during scoring. The cause
// is carried, never silently swallowed.
func ErrSearchFault(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SEARCH_FAULT,
		Message:  "Error processing query",
	}
}

// Index Errors

func ErrIndexNotFound(projectName string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_INDEX_NOT_FOUND,
		Message:  "No meeting index found for project",
	}.WithDetail("project", projectName)
}

func ErrMeetingNotFound(meetingID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "Meeting not found in index",
	}.WithDetail("meeting_id", meetingID)
}

// ErrArtifactParse marks one unreadable or malformed meeting artifact. Builds
// log it, skip the record and continue.
func ErrArtifactParse(meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusUnprocessableEntity,
		Code:     ErrorCode_ARTIFACT_PARSE,
		Message:  "Failed to parse meeting artifact",
	}.WithDetail("meeting_id", meetingID)
}

// ErrIndexPersistence is returned when the index snapshot cannot be written.
// The in-memory index remains usable but changes are not durable.
func ErrIndexPersistence(projectName string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INDEX_PERSISTENCE,
		Message:  "Failed to persist meeting index",
	}.WithDetail("project", projectName)
}

func ErrIndexBuildFailed(projectName string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INDEX_BUILD_FAILED,
		Message:  "Failed to build meeting index",
	}.WithDetail("project", projectName)
}

func ErrIndexUpdateFailed(meetingID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INDEX_UPDATE_FAILED,
		Message:  "Failed to update meeting index",
	}.WithDetail("meeting_id", meetingID)
}

// Integration Errors

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

// HTTPStatusOK represents a successful HTTP response.
func HTTPStatusOK(message string) AppError {
	return AppError{
		HTTPCode: http.StatusOK,
		Code:     ErrorCode_HTTP_OK,
		Message:  message,
	}
}
