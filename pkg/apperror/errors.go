package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure by how it must be handled.
type Kind string

const (
	// KindUnauthorized is an HTTP 401 from any endpoint. Always fatal to the
	// session, handled globally, never locally recoverable.
	KindUnauthorized Kind = "unauthorized"
	// KindTransient is a network or non-2xx server failure. Callers fall back
	// to an empty or last-known display state.
	KindTransient Kind = "transient"
	// KindRemote is a logical failure: the backend answered HTTP 200 with an
	// envelope status other than "success".
	KindRemote Kind = "remote"
	// KindValidation is a client-side input failure that never reaches the
	// network.
	KindValidation Kind = "validation"
)

// AppError is a structured error carrying the failure kind and an optional
// remote error code.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error // wrapped cause, not shown to the user
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by kind (and code when the target carries one), so
// errors.Is(err, Unauthorized()) works regardless of message.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Code == "" || t.Code == e.Code)
}

// Unauthorized returns the session-fatal authentication failure.
func Unauthorized() *AppError {
	return &AppError{Kind: KindUnauthorized, Code: "AUTH_401", Message: "session is no longer valid"}
}

// Transient wraps a network or server failure.
func Transient(message string, err error) *AppError {
	return &AppError{Kind: KindTransient, Code: "NET_FAIL", Message: message, Err: err}
}

// Remote returns a logical failure reported inside a 200 envelope.
func Remote(code, message string) *AppError {
	if code == "" {
		code = "API_ERROR"
	}
	return &AppError{Kind: KindRemote, Code: code, Message: message}
}

// Validation returns a client-side input failure.
func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Code: "VAL_INPUT", Message: message}
}

// KindOf extracts the failure kind, or "" for non-AppErrors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsUnauthorized reports whether err is the session-fatal failure.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// IsTransient reports whether the caller should degrade to an empty or
// last-known state.
func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}
