package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrNotConfirmed is returned when a destructive action was not confirmed.
	ErrNotConfirmed = errors.New("action requires confirmation")
	// ErrEditUnsupported is returned when editing a resource the backend cannot update.
	ErrEditUnsupported = errors.New("editing questions is not supported by the backend yet")
	// ErrNotAdmin is returned when a non-admin account tries to sign in.
	ErrNotAdmin = errors.New("unauthorized login, only admins can sign in")
	// ErrNotFound is returned when an action targets a record missing from the loaded list.
	ErrNotFound = errors.New("record not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NetworkError means the request never reached the backend or no response was read.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError represents a non-success response from the backend.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ValidationError is raised client-side before any request is made.
type ValidationError struct {
	// Fields maps a form field to the reason it was rejected.
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// ServerMessage returns the backend-provided reason carried by err, if any.
func ServerMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return ""
}

// UserMessage builds the notice text shown after a failed action.
func UserMessage(err error, generic string) string {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, ErrEditUnsupported), errors.Is(err, ErrNotConfirmed), errors.Is(err, ErrNotAdmin), errors.Is(err, ErrNotFound):
		return err.Error()
	}
	if msg := ServerMessage(err); msg != "" {
		return generic + ": " + msg
	}
	return generic
}

// StatusFor maps an action failure to the status returned to the dashboard client.
func StatusFor(err error) (int, string) {
	var (
		validationErr *ValidationError
		httpErr       *HTTPError
		networkErr    *NetworkError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, "VALIDATION_FAILED"
	case errors.Is(err, ErrNotConfirmed):
		return http.StatusConflict, "CONFIRMATION_REQUIRED"
	case errors.Is(err, ErrEditUnsupported):
		return http.StatusNotImplemented, "EDIT_UNSUPPORTED"
	case errors.Is(err, ErrNotAdmin):
		return http.StatusForbidden, "NOT_ADMIN"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.As(err, &httpErr):
		if httpErr.StatusCode == http.StatusUnauthorized {
			return http.StatusUnauthorized, "BACKEND_UNAUTHORIZED"
		}
		return http.StatusBadGateway, "BACKEND_ERROR"
	case errors.As(err, &networkErr):
		return http.StatusBadGateway, "BACKEND_UNREACHABLE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
