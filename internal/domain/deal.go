package domain

import (
	"time"
)

// DealStatus represents the negotiation stage of an event sponsorship
type DealStatus string

const (
	DealStatusLead        DealStatus = "lead"
	DealStatusContacted   DealStatus = "contacted"
	DealStatusNegotiating DealStatus = "negotiating"
	DealStatusSigned      DealStatus = "signed"
	DealStatusPaid        DealStatus = "paid"
	DealStatusChurned     DealStatus = "churned"
)

// dealTransitions defines allowed status transitions.
// Key is current status, value is the list of allowed next statuses.
// Churned is reachable from every non-terminal status.
var dealTransitions = map[DealStatus][]DealStatus{
	DealStatusLead:        {DealStatusContacted, DealStatusChurned},
	DealStatusContacted:   {DealStatusNegotiating, DealStatusChurned},
	DealStatusNegotiating: {DealStatusSigned, DealStatusChurned},
	DealStatusSigned:      {DealStatusPaid, DealStatusChurned},
	DealStatusPaid:        {DealStatusChurned},
	DealStatusChurned:     {}, // Terminal
}

// IsValid returns true if the status is a known deal status
func (s DealStatus) IsValid() bool {
	_, exists := dealTransitions[s]
	return exists
}

// IsTerminal returns true if no further transition is possible
func (s DealStatus) IsTerminal() bool {
	return s == DealStatusChurned
}

// CanTransitionTo returns true if transition to the target status is allowed
func (s DealStatus) CanTransitionTo(target DealStatus) bool {
	allowed, exists := dealTransitions[s]
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

// DealStatuses lists every valid deal status
func DealStatuses() []DealStatus {
	return []DealStatus{
		DealStatusLead,
		DealStatusContacted,
		DealStatusNegotiating,
		DealStatusSigned,
		DealStatusPaid,
		DealStatusChurned,
	}
}

// Deal binds one sponsor to one event. Deals are never deleted, only
// status-transitioned toward the churned sink.
type Deal struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	SponsorID      string     `json:"sponsor_id"`
	Status         DealStatus `json:"status"`
	Level          string     `json:"level"` // package name, soft reference
	CashValue      float64    `json:"cash_value"`
	InKindValue    float64    `json:"in_kind_value"`
	ContractURL    string     `json:"contract_url,omitempty"`
	IdempotencyKey string     `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Validate checks deal invariants before a write
func (d *Deal) Validate() error {
	if d.EventID == "" {
		return NewValidationError("event_id", "is required")
	}
	if d.SponsorID == "" {
		return NewValidationError("sponsor_id", "is required")
	}
	if d.Level == "" {
		return NewValidationError("level", "is required")
	}
	if d.CashValue < 0 {
		return NewValidationError("cash_value", "must be non-negative")
	}
	if d.InKindValue < 0 {
		return NewValidationError("in_kind_value", "must be non-negative")
	}
	if !d.Status.IsValid() {
		return NewValidationError("status", "unknown deal status")
	}
	return nil
}

// TotalValue returns cash plus in-kind value
func (d *Deal) TotalValue() float64 {
	return d.CashValue + d.InKindValue
}

// HasContract reports whether a contract document has been attached
func (d *Deal) HasContract() bool {
	return d.ContractURL != ""
}
