package types

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel for a local, expected lookup miss (entity
// by id/alias, event by id). Callers match it with errors.Is; the
// Planner and Executor recover from it locally and never propagate it.
var ErrNotFound = errors.New("not found")

// ErrInternalInvariantViolation is the sentinel for a structural
// invariant break that load validation should have made impossible
// (unknown participant, depth overrun, broken visited-set). It is
// always a bug, never expected, and is never silenced.
var ErrInternalInvariantViolation = errors.New("internal invariant violation")

// LoadError wraps a fatal failure encountered while loading the three
// persisted artifacts. It is surfaced to the caller at startup only;
// no query is ever accepted against a store that failed to load.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("load error: %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("load error: %s", e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError constructs a LoadError for a given artifact path and reason.
func NewLoadError(path, reason string, err error) *LoadError {
	return &LoadError{Path: path, Reason: reason, Err: err}
}

// InvariantError wraps ErrInternalInvariantViolation with the offending
// detail, for propagation to the caller as a typed failure.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violation: %s", e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrInternalInvariantViolation }

// NewInvariantError constructs an InvariantError with the given detail.
func NewInvariantError(detail string) *InvariantError {
	return &InvariantError{Detail: detail}
}
