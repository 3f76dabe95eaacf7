package errors

// ErrorCode identifies a class of application error in API responses.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1
	ErrorCode_INVALID_ARGUMENT ErrorCode = 2
	ErrorCode_NOT_FOUND        ErrorCode = 3
	ErrorCode_ALREADY_EXISTS   ErrorCode = 4
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 5

	// Query errors
	ErrorCode_QUERY_INVALID ErrorCode = 100
	ErrorCode_SEARCH_FAULT  ErrorCode = 101

	// Index errors
	ErrorCode_INDEX_NOT_FOUND     ErrorCode = 200
	ErrorCode_INDEX_PERSISTENCE   ErrorCode = 201
	ErrorCode_ARTIFACT_PARSE      ErrorCode = 202
	ErrorCode_MEETING_NOT_FOUND   ErrorCode = 203
	ErrorCode_INDEX_BUILD_FAILED  ErrorCode = 204
	ErrorCode_INDEX_UPDATE_FAILED ErrorCode = 205

	// Integration errors
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 300
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 301
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_QUERY_INVALID:              "QUERY_INVALID",
	ErrorCode_SEARCH_FAULT:               "SEARCH_FAULT",
	ErrorCode_INDEX_NOT_FOUND:            "INDEX_NOT_FOUND",
	ErrorCode_INDEX_PERSISTENCE:          "INDEX_PERSISTENCE",
	ErrorCode_ARTIFACT_PARSE:             "ARTIFACT_PARSE",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_INDEX_BUILD_FAILED:         "INDEX_BUILD_FAILED",
	ErrorCode_INDEX_UPDATE_FAILED:        "INDEX_UPDATE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
