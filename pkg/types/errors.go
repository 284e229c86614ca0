// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// ErrorKind classifies a pipeline failure. Every kind is terminal for
// the invocation that produced it: the pipeline reports once and stops.
type ErrorKind int

const (
	// KindNetworkTimeout means a request exceeded its time bound.
	KindNetworkTimeout ErrorKind = iota + 1

	// KindNetworkFailure means a connection, DNS, or HTTP-status failure.
	KindNetworkFailure

	// KindMalformedResponse means a body could not be parsed into the
	// expected JSON or XML shape.
	KindMalformedResponse

	// KindNotFound means a well-formed empty result. Distinct from a
	// true failure: repeating the same input yields the same outcome.
	KindNotFound

	// KindValidation means user input was rejected before any external
	// call was attempted.
	KindValidation

	// KindCapabilityUnavailable means the question-answering capability
	// failed to initialize. Checked once, surfaced on every use.
	KindCapabilityUnavailable
)

// String returns the kind name used in logs and API error payloads.
func (k ErrorKind) String() string {
	switch k {
	case KindNetworkTimeout:
		return "network_timeout"
	case KindNetworkFailure:
		return "network_failure"
	case KindMalformedResponse:
		return "malformed_response"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_error"
	case KindCapabilityUnavailable:
		return "capability_unavailable"
	default:
		return "unknown"
	}
}

// Error is a classified pipeline error. Message is safe to surface to
// the user; Err carries the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// NewError builds a classified error wrapping cause (which may be nil).
func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// NotFound builds a KindNotFound error carrying a feature-specific
// "none found" message.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Invalid builds a KindValidation error for rejected user input.
func Invalid(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf extracts the ErrorKind from err. Unclassified errors report
// KindNetworkFailure, the catch-all for unexpected failures at the
// external boundary.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNetworkFailure
}
