package domain

import "time"

// goalSlotsFallback is used by the opportunity goal heuristic when a
// package has no explicit slot count.
const goalSlotsFallback = 5

// DeliverableTemplate is one required asset in a package template.
// DueInDays is relative to deal signing.
type DeliverableTemplate struct {
	Title     string `json:"title"`
	DueInDays int    `json:"due_in_days,omitempty"`
}

// Package is a reusable sponsorship tier template. Global, not
// event-scoped; read-only to the deal wizard.
type Package struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	DefaultPrice float64               `json:"default_price"`
	DefaultSlots int                   `json:"default_slots"`
	Deliverables []DeliverableTemplate `json:"deliverables,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// Validate checks package invariants before a write
func (p *Package) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", "is required")
	}
	if p.DefaultPrice < 0 {
		return NewValidationError("default_price", "must be non-negative")
	}
	if p.DefaultSlots < 0 {
		return NewValidationError("default_slots", "must be non-negative")
	}
	return nil
}

// SlotsOrDefault returns the package slot count, falling back to the
// given default when the package has no explicit count.
func (p *Package) SlotsOrDefault(fallback int) int {
	if p.DefaultSlots > 0 {
		return p.DefaultSlots
	}
	return fallback
}

// GoalSlots returns the slot count used by the revenue goal heuristic.
// This is an estimate input, never ground truth for financial reporting.
func (p *Package) GoalSlots() int {
	if p.DefaultSlots > 0 {
		return p.DefaultSlots
	}
	return goalSlotsFallback
}
