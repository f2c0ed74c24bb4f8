package errors

// ErrorCode is the machine-readable code carried in error responses.
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL            ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT    ErrorCode = 1001
	ErrorCode_NOT_FOUND           ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS      ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED     ErrorCode = 1004
	ErrorCode_SERVICE_UNAVAILABLE ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD     ErrorCode = 1006

	// Authentication
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2001
	ErrorCode_AUTH_USER_NOT_FOUND      ErrorCode = 2002
	ErrorCode_AUTH_USER_ALREADY_EXISTS ErrorCode = 2003

	// Meetings
	ErrorCode_MEETING_NOT_FOUND          ErrorCode = 3000
	ErrorCode_PARTICIPANT_NOT_FOUND      ErrorCode = 3001
	ErrorCode_PARTICIPANT_ALREADY_EXISTS ErrorCode = 3002

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 4000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                "UNSPECIFIED",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_SERVICE_UNAVAILABLE:        "SERVICE_UNAVAILABLE",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_INVALID_CREDENTIALS:   "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_NOT_FOUND:        "AUTH_USER_NOT_FOUND",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:   "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_PARTICIPANT_NOT_FOUND:      "PARTICIPANT_NOT_FOUND",
	ErrorCode_PARTICIPANT_ALREADY_EXISTS: "PARTICIPANT_ALREADY_EXISTS",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
