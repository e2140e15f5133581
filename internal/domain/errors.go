package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	Err        error     `json:"-"`

	// FieldErrors is populated only for validation errors: one
	// message per offending draft field.
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewTransportError creates a transport error for a failed gateway
// call. The operation names the entity and verb, e.g. "users list".
func NewTransportError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeTransport,
		fmt.Sprintf("Remote call '%s' failed", operation),
		http.StatusBadGateway,
		err,
	)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string, id int64) *AppError {
	return NewAppError(
		ErrCodeNotFound,
		fmt.Sprintf("%s %d not found", resource, id),
		http.StatusNotFound,
		nil,
	)
}

// NewValidationError creates a validation error carrying one message
// per failed field. It never leaves the form session that raised it.
func NewValidationError(fieldErrors map[string]string) *AppError {
	err := NewAppError(
		ErrCodeValidation,
		fmt.Sprintf("Validation failed for %d field(s)", len(fieldErrors)),
		http.StatusBadRequest,
		nil,
	)
	err.FieldErrors = fieldErrors
	return err
}

// NewDecodeError creates an error for an undecodable server response
func NewDecodeError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeDecode,
		fmt.Sprintf("Could not decode response of '%s'", operation),
		http.StatusBadGateway,
		err,
	)
}

// NewUnsupportedFilterError flags a filter kind the entity's search
// surface does not offer. Raised before any request is issued.
func NewUnsupportedFilterError(entity string, kind FilterKind) *AppError {
	return NewAppError(
		ErrCodeUnsupportedFilter,
		fmt.Sprintf("Entity '%s' does not support filtering by '%s'", entity, kind),
		http.StatusBadRequest,
		nil,
	)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a not-found AppError.
func IsNotFound(err error) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == ErrCodeNotFound
}

// Error codes for different categories of errors
const (
	ErrCodeTransport  = "TRANSPORT_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeDecode     = "DECODE_ERROR"

	ErrCodeUnsupportedFilter   = "UNSUPPORTED_FILTER"
	ErrCodeSaveInFlight        = "SAVE_IN_FLIGHT"
	ErrCodeSelectionNotAllowed = "SELECTION_NOT_ALLOWED"
	ErrCodeSessionNotReady     = "SESSION_NOT_READY"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}
