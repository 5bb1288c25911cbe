package service

import (
	"math"
	"time"

	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
)

// ReadinessAggregator computes an event's scalar health metrics from its
// phases and ticket tiers. Pure; it mutates nothing it is given.
type ReadinessAggregator struct{}

// NewReadinessAggregator creates a new ReadinessAggregator
func NewReadinessAggregator() *ReadinessAggregator {
	return &ReadinessAggregator{}
}

// DaysToGo returns whole days until the event starts, floored at zero.
// A partial day counts as a full day.
func (a *ReadinessAggregator) DaysToGo(event *domain.Event, now time.Time) int {
	until := event.StartTime.Sub(now)
	if until <= 0 {
		return 0
	}
	return int(math.Ceil(until.Hours() / 24))
}

// TicketTotals sums sold, capacity and realized revenue across tiers
func (a *ReadinessAggregator) TicketTotals(tiers []*domain.TicketTier) (sold, capacity int, revenue float64) {
	for _, t := range tiers {
		sold += t.QuantitySold
		capacity += t.QuantityTotal
		revenue += t.Revenue()
	}
	return sold, capacity, revenue
}

// ReadinessPercent returns the completed share of the event's phase
// checklist, rounded to the nearest whole percent. An event with no
// phases of its own is measured against the canonical default list so
// readiness stays computable.
func (a *ReadinessAggregator) ReadinessPercent(phases []*domain.Phase) (percent, completed, total int) {
	total = len(phases)
	if total == 0 {
		total = len(domain.DefaultPhaseNames)
	}
	for _, p := range phases {
		if p.Status == domain.PhaseStatusCompleted {
			completed++
		}
	}
	percent = int(math.Round(100 * float64(completed) / float64(total)))
	return percent, completed, total
}

// GoalEstimate returns the heuristic revenue goal: every package sold
// out at its default price. An estimate for the sales view only, never
// an input to financial reporting.
func (a *ReadinessAggregator) GoalEstimate(packages []*domain.Package) float64 {
	var goal float64
	for _, p := range packages {
		goal += p.DefaultPrice * float64(p.GoalSlots())
	}
	return goal
}

// Compute builds the readiness view for one event
func (a *ReadinessAggregator) Compute(event *domain.Event, phases []*domain.Phase, tiers []*domain.TicketTier, now time.Time) dto.ReadinessResponse {
	percent, completed, total := a.ReadinessPercent(phases)
	sold, capacity, revenue := a.TicketTotals(tiers)
	return dto.ReadinessResponse{
		EventID:          event.ID,
		ReadinessPercent: percent,
		PhasesCompleted:  completed,
		TotalPhases:      total,
		DaysToGo:         a.DaysToGo(event, now),
		TicketsSold:      sold,
		TotalCapacity:    capacity,
		Revenue:          revenue,
	}
}
