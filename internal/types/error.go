package types

import "fmt"

// CustomError carries an HTTP status code, a client-safe message, and a
// dotted error-type string used by the response envelope.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError builds a 400 error for missing or malformed input.
func NewValidationError(message, errorType string) *CustomError {
	return &CustomError{Code: 400, Message: message, Type: errorType}
}

// NewConflictError builds a 409 error for duplicate unique keys.
func NewConflictError(message, errorType string) *CustomError {
	return &CustomError{Code: 409, Message: message, Type: errorType}
}

// NewAuthError builds a 401 error for missing, invalid, or expired credentials.
func NewAuthError(message, errorType string) *CustomError {
	return &CustomError{Code: 401, Message: message, Type: errorType}
}

// NewForbiddenError builds a 403 error for identity mismatches. The message
// is fixed and must not describe the target resource.
func NewForbiddenError(message, errorType string) *CustomError {
	return &CustomError{Code: 403, Message: message, Type: errorType}
}

// NewNotFoundError builds a 404 error. Ownership mismatches on existing
// resources also map here so existence is never leaked across owners.
func NewNotFoundError(message, errorType string) *CustomError {
	return &CustomError{Code: 404, Message: message, Type: errorType}
}
