package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when a requested status is not
	// reachable from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStaleStatus is returned when the stored status no longer matches
	// the status the caller read.
	ErrStaleStatus = errors.New("stale status")
	// ErrInventoryExhausted is returned when a package has no remaining
	// slots at insert time.
	ErrInventoryExhausted = errors.New("package inventory exhausted")
	// ErrCommitFailed is returned when a transactional write failed; no
	// partial rows are visible.
	ErrCommitFailed = errors.New("commit failed")
	// ErrUpstreamUnavailable is returned when a collaborator service
	// (storage, AI, auth) failed. The engine does not retry on its behalf.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrDuplicateSubmit is returned when an idempotency key has already
	// been consumed by a committed submit.
	ErrDuplicateSubmit = errors.New("duplicate submit")

	ErrSponsorNotFound     = errors.New("sponsor not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrDealNotFound        = errors.New("deal not found")
	ErrActivationNotFound  = errors.New("activation not found")
	ErrDeliverableNotFound = errors.New("deliverable not found")
	ErrDraftNotFound       = errors.New("draft not found")
)

// ValidationError reports a rejected field before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for a field
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
