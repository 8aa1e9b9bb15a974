package errors

// ErrorCode identifies a failure category in API responses.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002
	ErrorCode_NOT_FOUND        ErrorCode = 1003

	// Pipeline stages
	ErrorCode_UNSUPPORTED_FORMAT    ErrorCode = 2000
	ErrorCode_CONVERSION_FAILED     ErrorCode = 2001
	ErrorCode_TRANSCRIPTION_FAILED  ErrorCode = 2002
	ErrorCode_SUMMARIZATION_FAILED  ErrorCode = 2003
	ErrorCode_EXTRACTION_FAILED     ErrorCode = 2004

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 3000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 3001
	ErrorCode_RATE_LIMITED               ErrorCode = 3002
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_UNSUPPORTED_FORMAT:         "UNSUPPORTED_FORMAT",
	ErrorCode_CONVERSION_FAILED:          "CONVERSION_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:       "TRANSCRIPTION_FAILED",
	ErrorCode_SUMMARIZATION_FAILED:       "SUMMARIZATION_FAILED",
	ErrorCode_EXTRACTION_FAILED:          "EXTRACTION_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_RATE_LIMITED:               "RATE_LIMITED",
}

// String returns the symbolic name of the error code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
