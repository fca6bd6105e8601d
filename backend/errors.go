package backend

import (
	"errors"
	"fmt"
)

// Kind classifies a backend failure.
type Kind int

const (
	// KindTransport covers connection, DNS, and timeout failures: the
	// backend was never reached or stopped answering mid-request.
	KindTransport Kind = iota

	// KindNotFound means the backend answered but does not know the
	// requested model. Model validation keys off this kind.
	KindNotFound

	// KindProtocol means the backend was reachable but the exchange went
	// wrong: a non-success status, a malformed body, or a response with
	// no usable completion.
	KindProtocol
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindNotFound:
		return "model not found"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by Client implementations. It records
// which model the call targeted so multi-model callers can attribute
// failures without string parsing.
type Error struct {
	Kind  Kind
	Model string
	Err   error
}

// NewError creates a backend error of the given kind for the given model,
// wrapping err as the underlying cause.
func NewError(kind Kind, model string, err error) *Error {
	return &Error{Kind: kind, Model: model, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend error (%s) for model %q: %v", e.Kind, e.Model, e.Err)
	}
	return fmt.Sprintf("backend error (%s) for model %q", e.Kind, e.Model)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a backend error caused by an unknown model.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsTransport reports whether err is a backend error caused by a transport failure.
func IsTransport(err error) bool { return hasKind(err, KindTransport) }

// IsProtocol reports whether err is a backend error caused by a protocol failure.
func IsProtocol(err error) bool { return hasKind(err, KindProtocol) }

func hasKind(err error, kind Kind) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == kind
}
