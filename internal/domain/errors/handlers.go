package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INCORRECT_CREDENTIALS"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response defines the envelope for error responses produced outside handlers,
// e.g. by the error middleware. Never carries stored credential material.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}
