// Package faults defines the error-kind taxonomy shared across the tailoring
// pipeline. Callers switch on Kind to choose an HTTP status and a remediation
// message, so kind strings are part of the API contract and must stay stable.
package faults

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable discriminant for a pipeline failure.
type Kind string

// Kind values surfaced across the API boundary.
const (
	KindInvalidInput           Kind = "invalid_input"
	KindInvalidURL             Kind = "invalid_url"
	KindInvalidURLFormat       Kind = "invalid_url_format"
	KindTimeout                Kind = "timeout"
	KindNetworkError           Kind = "network_error"
	KindExtractionFailed       Kind = "extraction_failed"
	KindDescriptionMissing     Kind = "description_missing"
	KindInvalidMasterResume    Kind = "invalid_master_resume"
	KindInvalidGeneratedResume Kind = "invalid_generated_resume"
	KindGenerationFailed       Kind = "resume_generation_failed"
	KindPDFGenerationFailed    Kind = "pdf_generation_failed"
	KindAuthError              Kind = "auth_error"
)

// Error is a pipeline failure carrying a stable kind discriminant.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that records cause for errors.Unwrap chains.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of err, or the empty string if err does not carry one.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
