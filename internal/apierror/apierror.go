// Package apierror provides the standardized error envelopes for the API.
// Every 4xx/5xx response goes through this package so clients see a
// consistent shape and internals (stack traces, storage errors) never leak.
package apierror

// APIError is the canonical error envelope for all non-validation failures.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries the field-keyed messages produced by form
// validation, exactly as the forms display them inline.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
