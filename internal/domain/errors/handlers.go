package errors

// ErrorBody is the JSON shape of every failed response.
type ErrorBody struct {
	Code    string `json:"code"`              // Stable machine-readable code, e.g. "NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Validation details per request location
	Stack   string `json:"stack,omitempty"`   // Diagnostic trace, never sent in production
}
