package domain

import "time"

// DeliverableStatus represents the review stage of a sponsor asset
type DeliverableStatus string

const (
	DeliverableStatusPending   DeliverableStatus = "pending"
	DeliverableStatusUploaded  DeliverableStatus = "uploaded"
	DeliverableStatusReviewing DeliverableStatus = "reviewing"
	DeliverableStatusApproved  DeliverableStatus = "approved"
	DeliverableStatusRejected  DeliverableStatus = "rejected"
)

// deliverableTransitions defines allowed status transitions. Rejected
// loops back to pending so the sponsor can re-upload.
var deliverableTransitions = map[DeliverableStatus][]DeliverableStatus{
	DeliverableStatusPending:   {DeliverableStatusUploaded},
	DeliverableStatusUploaded:  {DeliverableStatusReviewing},
	DeliverableStatusReviewing: {DeliverableStatusApproved, DeliverableStatusRejected},
	DeliverableStatusApproved:  {}, // Terminal
	DeliverableStatusRejected:  {DeliverableStatusPending},
}

// IsValid returns true if the status is a known deliverable status
func (s DeliverableStatus) IsValid() bool {
	_, exists := deliverableTransitions[s]
	return exists
}

// IsTerminal returns true once the deliverable is approved
func (s DeliverableStatus) IsTerminal() bool {
	return s == DeliverableStatusApproved
}

// CanTransitionTo returns true if transition to the target status is allowed
func (s DeliverableStatus) CanTransitionTo(target DeliverableStatus) bool {
	allowed, exists := deliverableTransitions[s]
	if !exists {
		return false
	}
	for _, next := range allowed {
		if next == target {
			return true
		}
	}
	return false
}

// Deliverable is a required media or document asset a sponsor must
// supply for a deal. Seeded from the package's deliverable template at
// submit time.
type Deliverable struct {
	ID        string            `json:"id"`
	DealID    string            `json:"deal_id"`
	Title     string            `json:"title"`
	DueDate   *time.Time        `json:"due_date,omitempty"`
	Status    DeliverableStatus `json:"status"`
	AssetURL  string            `json:"asset_url,omitempty"` // public URL returned by object storage
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Validate checks deliverable invariants before a write
func (d *Deliverable) Validate() error {
	if d.DealID == "" {
		return NewValidationError("deal_id", "is required")
	}
	if d.Title == "" {
		return NewValidationError("title", "is required")
	}
	if !d.Status.IsValid() {
		return NewValidationError("status", "unknown deliverable status")
	}
	return nil
}
