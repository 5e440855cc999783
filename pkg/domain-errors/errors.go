// Package domainerrors provides coded errors for the closed failure taxonomy
// of the service layer.
//
// Stores return sentinel errors (pkg/platform/sentinel) for infrastructure
// facts; services translate those into coded domain errors; the HTTP boundary
// (pkg/platform/httputil) maps codes to status codes in exactly one place.
// No other layer inspects error strings.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error. The set is closed: adding a code means
// extending the boundary mapping as well.
type Code string

const (
	// CodeBadRequest covers malformed requests (unparseable body, bad verb use).
	CodeBadRequest Code = "bad_request"
	// CodeInvalidInput covers missing or syntactically invalid arguments,
	// always detected before any store access.
	CodeInvalidInput Code = "invalid_input"
	// CodeValidation covers semantically invalid values (negative quantity,
	// over-long name), detected after merge/normalization.
	CodeValidation Code = "validation_failed"
	// CodeNotFound covers references to ids that do not exist.
	CodeNotFound Code = "not_found"
	// CodeUnauthorized covers operations the acting principal lacks
	// membership, ownership, or created-by rights for.
	CodeUnauthorized Code = "unauthorized"
	// CodeForbidden covers authenticated requests rejected outside the
	// membership model (e.g. admin surfaces).
	CodeForbidden Code = "forbidden"
	// CodeConflict covers business-rule violations and duplicates: duplicate
	// membership, duplicate ingredient in scope, owner self-removal.
	CodeConflict Code = "conflict"
	// CodeInvariantViolation marks a broken model invariant. Constructors and
	// state transitions return it; services usually re-code it for the API.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeInternal covers unexpected infrastructure failures.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error, optionally wrapping a cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a coded error with no cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. A nil cause
// returns nil so call sites can wrap unconditionally.
func Wrap(cause error, code Code, message string) error {
	if cause == nil {
		return nil
	}
	return &Error{Code: code, Message: message, cause: cause}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// uncoded errors. Used by the boundary mapping.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the user-facing message from err. Uncoded errors get
// no message; their details must not leak to clients.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

// Is delegates to errors.Is; exported so service code can stay on one import.
func Is(err, target error) bool { return errors.Is(err, target) }
