package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrCaseNotFound    = errors.New("case not found")
	ErrInvalidRole     = errors.New("invalid message role")
	ErrInvalidSnapshot = errors.New("invalid analysis snapshot kind")
	ErrEmptyMessage    = errors.New("message text is required")
)

// FlowErrorKind classifies why an AI flow invocation failed.
type FlowErrorKind string

const (
	FlowErrConfigurationMissing FlowErrorKind = "configuration_missing"
	FlowErrTransportFailure     FlowErrorKind = "transport_failure"
	FlowErrNonSuccessStatus     FlowErrorKind = "non_success_status"
	FlowErrMalformedJSON        FlowErrorKind = "malformed_json"
	FlowErrSchemaViolation      FlowErrorKind = "schema_violation"
)

// FlowError is the typed failure returned by the completion client and the
// roadmap extractor. Raw, when set, holds the upstream text that triggered
// the failure, for diagnostics only.
type FlowError struct {
	Kind       FlowErrorKind
	Message    string
	StatusCode int
	Raw        string
	Err        error
}

func (e *FlowError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FlowError) Unwrap() error {
	return e.Err
}

// NewFlowError creates a FlowError with the given kind and message.
func NewFlowError(kind FlowErrorKind, message string) *FlowError {
	return &FlowError{Kind: kind, Message: message}
}

// FlowErrorKindOf returns the kind of err if it is (or wraps) a FlowError.
func FlowErrorKindOf(err error) (FlowErrorKind, bool) {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}
