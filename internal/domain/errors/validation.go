package errors

import "net/http"

// Request locations a validation issue can be reported against.
const (
	LocationParams = "params"
	LocationQuery  = "query"
	LocationBody   = "body"
)

// Issue describes one rule a field failed.
type Issue struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ValidationDetails maps a request location to the offending keys and their issues.
type ValidationDetails map[string]map[string][]Issue

// Add records an issue for key at location.
func (d ValidationDetails) Add(location, key string, issue Issue) {
	fields, ok := d[location]
	if !ok {
		fields = make(map[string][]Issue)
		d[location] = fields
	}
	fields[key] = append(fields[key], issue)
}

// Empty reports whether no issue was recorded.
func (d ValidationDetails) Empty() bool {
	return len(d) == 0
}

// ValidationError is returned by the validation gate when a request does not
// conform to its route schema.
type ValidationError struct {
	details ValidationDetails
}

// NewValidationError wraps the collected issues.
func NewValidationError(details ValidationDetails) *ValidationError {
	return &ValidationError{details: details}
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return CodeValidationFailed
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the per-location issues.
func (e *ValidationError) Details() any {
	return e.details
}

// Issues returns the typed per-location issues.
func (e *ValidationError) Issues() ValidationDetails {
	return e.details
}
