package types

// DetailResponse is the body of every HTTP error reply:
//
//	{"detail": "Ollama not available: connection refused"}
type DetailResponse struct {
	Detail string `json:"detail"`
}

// ErrorResponse is the payload of a mid-stream SSE error frame, once the
// status line has already been sent.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information for a stream error frame.
type ErrorDetail struct {
	// Message is a human-readable error message.
	Message string `json:"message"`

	// Type categorizes the error.
	Type string `json:"type"`

	// Code is a machine-readable error code.
	Code string `json:"code,omitempty"`
}

// Error type constants.
const (
	// ErrorTypeBackend indicates the backend failed or misbehaved.
	ErrorTypeBackend = "backend_error"

	// ErrorTypeTimeout indicates the backend went quiet for too long.
	ErrorTypeTimeout = "timeout_error"
)

// Error code constants.
const (
	CodeStreamIdleTimeout = "stream_idle_timeout"
	CodeStreamInterrupted = "stream_interrupted"
	CodeBackendError      = "backend_error"
)

// NewDetailResponse creates a {"detail": ...} body.
func NewDetailResponse(detail string) *DetailResponse {
	return &DetailResponse{Detail: detail}
}

// NewErrorResponse creates a stream error payload.
func NewErrorResponse(message, errorType, code string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Message: message,
			Type:    errorType,
			Code:    code,
		},
	}
}
