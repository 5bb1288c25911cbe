package domain

import "time"

// Event represents a produced event (show, presentation, gala)
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Venue     string    `json:"venue,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks event invariants before a write
func (e *Event) Validate() error {
	if e.Name == "" {
		return NewValidationError("name", "is required")
	}
	if e.StartTime.IsZero() {
		return NewValidationError("start_time", "is required")
	}
	if !e.EndTime.IsZero() && e.EndTime.Before(e.StartTime) {
		return NewValidationError("end_time", "must be after start time")
	}
	return nil
}

// IsUpcoming reports whether the event starts after now
func (e *Event) IsUpcoming(now time.Time) bool {
	return e.StartTime.After(now)
}

// TicketTier is a priced admission category for an event
type TicketTier struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	QuantityTotal int       `json:"quantity_total"`
	QuantitySold  int       `json:"quantity_sold"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks tier invariants before a write
func (t *TicketTier) Validate() error {
	if t.EventID == "" {
		return NewValidationError("event_id", "is required")
	}
	if t.Name == "" {
		return NewValidationError("name", "is required")
	}
	if t.Price < 0 {
		return NewValidationError("price", "must be non-negative")
	}
	if t.QuantityTotal < 0 {
		return NewValidationError("quantity_total", "must be non-negative")
	}
	if t.QuantitySold < 0 {
		return NewValidationError("quantity_sold", "must be non-negative")
	}
	if t.QuantitySold > t.QuantityTotal {
		return NewValidationError("quantity_sold", "cannot exceed quantity_total")
	}
	return nil
}

// Revenue returns the realized ticket revenue for this tier
func (t *TicketTier) Revenue() float64 {
	return t.Price * float64(t.QuantitySold)
}

// PhaseStatus represents the state of one production checklist item
type PhaseStatus string

const (
	PhaseStatusNotStarted PhaseStatus = "not_started"
	PhaseStatusInProgress PhaseStatus = "in_progress"
	PhaseStatusBlocked    PhaseStatus = "blocked"
	PhaseStatusCompleted  PhaseStatus = "completed"
)

// IsValid returns true if the status is a known phase status
func (s PhaseStatus) IsValid() bool {
	switch s {
	case PhaseStatusNotStarted, PhaseStatusInProgress, PhaseStatusBlocked, PhaseStatusCompleted:
		return true
	}
	return false
}

// Phase is one item of an event's production checklist
type Phase struct {
	ID         string      `json:"id"`
	EventID    string      `json:"event_id"`
	Name       string      `json:"name"`
	OrderIndex int         `json:"order_index"`
	Status     PhaseStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// DefaultPhaseNames is the canonical production checklist used as the
// readiness denominator when an event has no phases of its own.
var DefaultPhaseNames = []string{
	"Concept & Creative Direction",
	"Budget Approval",
	"Venue Booking",
	"Designer Lineup",
	"Casting",
	"Sponsorship Outreach",
	"Ticketing Setup",
	"Production Schedule",
	"Runway & Stage Design",
	"Hair & Makeup Team",
	"Press & Media Accreditation",
	"Rehearsals",
	"Front of House",
	"Show Day Operations",
}
