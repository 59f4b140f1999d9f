// Package apierror provides the standardized error envelopes for the API.
// All 4xx/5xx responses go through this package so that clients always see
// {"message": ...} — internal details (SQL, stack traces) never leak.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// FieldError reports one violated field of a request body or path params.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError wraps every violated field of a request; the pipeline stops
// before any domain logic runs, so no partial application is possible.
type ValidationError struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func NewValidation(errors []FieldError) *ValidationError {
	return &ValidationError{Message: "Error de validacion", Errors: errors}
}
