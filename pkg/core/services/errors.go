package services

import (
	"errors"
	"fmt"
)

// Kind classifies a workflow failure with a machine-readable code
type Kind string

const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindInvalidArgument    Kind = "invalid-argument"
	KindNotFound           Kind = "not-found"
	KindPermissionDenied   Kind = "permission-denied"
	KindFailedPrecondition Kind = "failed-precondition"
	KindInternal           Kind = "internal"
)

// WorkflowError is a tagged failure surfaced to the caller. All validation
// and state checks run before any mutation, so an operation that returns a
// WorkflowError has performed zero side effects.
type WorkflowError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *WorkflowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// newError creates a WorkflowError with the given kind and message
func newError(kind Kind, format string, args ...any) *WorkflowError {
	return &WorkflowError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// internalError wraps an unexpected store or runtime failure, preserving
// the underlying error for diagnostics
func internalError(err error, format string, args ...any) *WorkflowError {
	return &WorkflowError{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the failure kind from an error returned by a workflow
// operation. Errors that are not WorkflowErrors are classified as internal.
func KindOf(err error) Kind {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Kind
	}
	return KindInternal
}
