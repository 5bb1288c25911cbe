package domain

import "time"

// ActivationStatus represents the production stage of a brand activation
type ActivationStatus string

const (
	ActivationStatusPlanning   ActivationStatus = "planning"
	ActivationStatusApproved   ActivationStatus = "approved"
	ActivationStatusInProgress ActivationStatus = "in_progress"
	ActivationStatusReady      ActivationStatus = "ready"
	ActivationStatusCompleted  ActivationStatus = "completed"
)

// activationOrder maps each status to its position on the strictly
// forward pipeline.
var activationOrder = map[ActivationStatus]int{
	ActivationStatusPlanning:   0,
	ActivationStatusApproved:   1,
	ActivationStatusInProgress: 2,
	ActivationStatusReady:      3,
	ActivationStatusCompleted:  4,
}

// IsValid returns true if the status is a known activation status
func (s ActivationStatus) IsValid() bool {
	_, exists := activationOrder[s]
	return exists
}

// IsTerminal returns true once the activation is completed
func (s ActivationStatus) IsTerminal() bool {
	return s == ActivationStatusCompleted
}

// CanTransitionTo returns true for a single forward step. Multi-step
// forward jumps need the operator force path; backward moves are never
// allowed.
func (s ActivationStatus) CanTransitionTo(target ActivationStatus) bool {
	from, ok := activationOrder[s]
	if !ok {
		return false
	}
	to, ok := activationOrder[target]
	if !ok {
		return false
	}
	return to == from+1
}

// CanForceTo returns true for any forward jump, used by the operator
// override. Still refuses backward moves and moves out of a terminal
// status.
func (s ActivationStatus) CanForceTo(target ActivationStatus) bool {
	from, ok := activationOrder[s]
	if !ok {
		return false
	}
	to, ok := activationOrder[target]
	if !ok {
		return false
	}
	return to > from
}

// Activation is a planned brand moment tied to one deal. Created in bulk
// at deal submit or individually afterward; archived via status, never
// deleted.
type Activation struct {
	ID          string           `json:"id"`
	DealID      string           `json:"deal_id"`
	Title       string           `json:"title"`
	Type        string           `json:"type"`
	Status      ActivationStatus `json:"status"`
	Location    string           `json:"location,omitempty"` // placement in venue
	Description string           `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Validate checks activation invariants before a write
func (a *Activation) Validate() error {
	if a.DealID == "" {
		return NewValidationError("deal_id", "is required")
	}
	if a.Title == "" {
		return NewValidationError("title", "is required")
	}
	if !a.Status.IsValid() {
		return NewValidationError("status", "unknown activation status")
	}
	return nil
}
