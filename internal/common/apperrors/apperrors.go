// Package apperrors defines the failure taxonomy shared by every concept.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure
type Kind string

const (
	// KindNotFound indicates a referenced entity is absent
	KindNotFound Kind = "not_found"

	// KindForbidden indicates the caller lacks the required relationship
	KindForbidden Kind = "forbidden"

	// KindConflict indicates an invariant would be violated
	KindConflict Kind = "conflict"

	// KindUnauthenticated indicates there is no valid session
	KindUnauthenticated Kind = "unauthenticated"

	// KindInvalid indicates malformed input
	KindInvalid Kind = "invalid"

	// KindInternal is reported for anything without a kind
	KindInternal Kind = "internal"
)

// Error is a classified failure with a human-readable message
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error with the same kind and, when the target has
// one, the same message. A bare kind target (see the Err* values) matches
// every error of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// Bare kind targets for errors.Is
var (
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrForbidden       = &Error{Kind: KindForbidden}
	ErrConflict        = &Error{Kind: KindConflict}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrInvalid         = &Error{Kind: KindInvalid}
)

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NotFound creates a NotFound error
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// Forbidden creates a Forbidden error
func Forbidden(format string, args ...any) *Error {
	return New(KindForbidden, fmt.Sprintf(format, args...))
}

// Conflict creates a Conflict error
func Conflict(format string, args ...any) *Error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

// Unauthenticated creates an Unauthenticated error
func Unauthenticated(format string, args ...any) *Error {
	return New(KindUnauthenticated, fmt.Sprintf(format, args...))
}

// Invalid creates an Invalid error
func Invalid(format string, args ...any) *Error {
	return New(KindInvalid, fmt.Sprintf(format, args...))
}

// Wrap classifies an underlying error
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf reports the kind of err, or KindInternal when it is unclassified
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the user-facing message of err
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
