// Package domainerrors defines the single error type surfaced by services.
//
// Stores return sentinel errors or raw backend errors; services translate them
// into *Error values carrying a stable Code, a user-facing Message, the
// backend's own error code when there was one, and an HTTP-like status.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an error for transport mapping and retry decisions.
type Code string

const (
	CodeAuth         Code = "AUTH_ERROR"
	CodeNotFound     Code = "NOT_FOUND"
	CodeRateLimit    Code = "RATE_LIMIT"
	CodeServer       Code = "SERVER_ERROR"
	CodeNetwork      Code = "NETWORK_ERROR"
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeConflict     Code = "CONFLICT"
	CodeBadRequest   Code = "BAD_REQUEST"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeTimeout      Code = "TIMEOUT"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeUnknown      Code = "UNKNOWN_ERROR"
)

// Error is the wrapped backend/service failure.
type Error struct {
	Code    Code
	Message string
	// BackendCode is the hosted backend's own code (SQLSTATE, PostgREST code).
	BackendCode string
	// Status is an HTTP-like status; 0 means no response was received.
	Status  int
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the default status for code.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Status: ToHTTPStatus(code)}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Status: ToHTTPStatus(code), Err: err}
}

// WithBackendCode records the backend's code on e and returns it.
func (e *Error) WithBackendCode(code string) *Error {
	e.BackendCode = code
	return e
}

// WithStatus overrides the status derived from the code.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// WithDetail adds a key to Details.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// NewNetwork marks a failure where no response was received. Network errors
// are always retryable.
func NewNetwork(err error, msg string) *Error {
	if msg == "" {
		msg = "Network error. Please check your connection."
	}
	return &Error{Code: CodeNetwork, Message: msg, Status: 0, Err: err}
}

// NewValidation marks caller input the backend will not accept.
func NewValidation(msg string, fields map[string]string) *Error {
	e := &Error{Code: CodeValidation, Message: msg, Status: http.StatusBadRequest}
	if len(fields) > 0 {
		e.Details = map[string]any{"fields": fields}
	}
	return e
}

// As extracts *Error from err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is reports whether the outermost *Error in err's chain carries code.
func Is(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// IsNetwork reports whether err is a network failure.
func IsNetwork(err error) bool {
	return Is(err, CodeNetwork)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsRetryable reports whether retrying the operation might succeed.
func IsRetryable(err error) bool {
	de, ok := As(err)
	if !ok {
		return true
	}
	switch de.Code {
	case CodeNetwork, CodeRateLimit, CodeTimeout:
		return true
	case CodeServer, CodeInternal, CodeUnknown:
		return de.Status == 0 || de.Status >= http.StatusInternalServerError
	default:
		return false
	}
}

// ToHTTPStatus maps a code to its default HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeAuth, CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeRateLimit:
		return http.StatusTooManyRequests
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeNetwork:
		return 0
	default:
		return http.StatusInternalServerError
	}
}

// CodeForStatus maps a backend HTTP status to a code.
func CodeForStatus(status int) Code {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return CodeAuth
	case status == http.StatusNotFound:
		return CodeNotFound
	case status == http.StatusTooManyRequests:
		return CodeRateLimit
	case status >= http.StatusInternalServerError:
		return CodeServer
	case status == http.StatusConflict:
		return CodeConflict
	case status >= http.StatusBadRequest:
		return CodeBadRequest
	default:
		return CodeUnknown
	}
}
