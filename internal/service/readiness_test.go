package service

import (
	"testing"
	"time"

	"github.com/runwaydesk/sponsorhub/internal/domain"
)

func TestDaysToGo(t *testing.T) {
	agg := NewReadinessAggregator()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  int
	}{
		{"ten days out", now.Add(10 * 24 * time.Hour), 10},
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
		{"under a day rounds up", now.Add(2 * time.Hour), 1},
		{"started today", now, 0},
		{"already past", now.Add(-48 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &domain.Event{StartTime: tt.start}
			if got := agg.DaysToGo(event, now); got != tt.want {
				t.Errorf("DaysToGo() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTicketTotals(t *testing.T) {
	agg := NewReadinessAggregator()
	tiers := []*domain.TicketTier{
		{Price: 100, QuantityTotal: 200, QuantitySold: 150},
		{Price: 250, QuantityTotal: 50, QuantitySold: 10},
	}

	sold, capacity, revenue := agg.TicketTotals(tiers)
	if sold != 160 {
		t.Errorf("sold = %d, want 160", sold)
	}
	if capacity != 250 {
		t.Errorf("capacity = %d, want 250", capacity)
	}
	if revenue != 17500 {
		t.Errorf("revenue = %v, want 17500", revenue)
	}
}

// Fourteen phases with seven completed reads as exactly 50 percent
func TestReadinessPercentHalfComplete(t *testing.T) {
	agg := NewReadinessAggregator()

	phases := make([]*domain.Phase, 0, 14)
	for i := 0; i < 14; i++ {
		status := domain.PhaseStatusNotStarted
		if i < 7 {
			status = domain.PhaseStatusCompleted
		}
		phases = append(phases, &domain.Phase{Status: status})
	}

	percent, completed, total := agg.ReadinessPercent(phases)
	if percent != 50 {
		t.Errorf("percent = %d, want 50", percent)
	}
	if completed != 7 || total != 14 {
		t.Errorf("completed/total = %d/%d, want 7/14", completed, total)
	}
}

// An event with no phases is measured against the canonical default
// list so readiness stays computable
func TestReadinessPercentNoPhasesFallsBack(t *testing.T) {
	agg := NewReadinessAggregator()

	percent, completed, total := agg.ReadinessPercent(nil)
	if total != len(domain.DefaultPhaseNames) {
		t.Errorf("total = %d, want %d", total, len(domain.DefaultPhaseNames))
	}
	if completed != 0 || percent != 0 {
		t.Errorf("completed/percent = %d/%d, want 0/0", completed, percent)
	}
}

func TestReadinessPercentBounds(t *testing.T) {
	agg := NewReadinessAggregator()

	all := []*domain.Phase{
		{Status: domain.PhaseStatusCompleted},
		{Status: domain.PhaseStatusCompleted},
	}
	if percent, _, _ := agg.ReadinessPercent(all); percent != 100 {
		t.Errorf("percent = %d, want 100 when all phases complete", percent)
	}

	mixed := []*domain.Phase{
		{Status: domain.PhaseStatusCompleted},
		{Status: domain.PhaseStatusInProgress},
		{Status: domain.PhaseStatusBlocked},
	}
	percent, _, _ := agg.ReadinessPercent(mixed)
	if percent < 0 || percent > 100 {
		t.Errorf("percent = %d, out of [0,100]", percent)
	}
	if percent != 33 {
		t.Errorf("percent = %d, want 33", percent)
	}
}

func TestGoalEstimate(t *testing.T) {
	agg := NewReadinessAggregator()

	packages := []*domain.Package{
		{Name: "Gold", DefaultPrice: 50000, DefaultSlots: 2},
		{Name: "Community", DefaultPrice: 1000}, // falls back to 5 slots
	}
	// 50000*2 + 1000*5
	if got := agg.GoalEstimate(packages); got != 105000 {
		t.Errorf("GoalEstimate() = %v, want 105000", got)
	}

	if got := agg.GoalEstimate(nil); got != 0 {
		t.Errorf("GoalEstimate(nil) = %v, want 0", got)
	}
}

func TestReadinessCompute(t *testing.T) {
	agg := NewReadinessAggregator()
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "e1", StartTime: now.Add(5 * 24 * time.Hour)}
	phases := []*domain.Phase{
		{Status: domain.PhaseStatusCompleted},
		{Status: domain.PhaseStatusNotStarted},
	}
	tiers := []*domain.TicketTier{{Price: 40, QuantityTotal: 100, QuantitySold: 25}}

	got := agg.Compute(event, phases, tiers, now)
	if got.ReadinessPercent != 50 {
		t.Errorf("ReadinessPercent = %d, want 50", got.ReadinessPercent)
	}
	if got.DaysToGo != 5 {
		t.Errorf("DaysToGo = %d, want 5", got.DaysToGo)
	}
	if got.TicketsSold != 25 || got.TotalCapacity != 100 {
		t.Errorf("tickets = %d/%d, want 25/100", got.TicketsSold, got.TotalCapacity)
	}
	if got.Revenue != 1000 {
		t.Errorf("Revenue = %v, want 1000", got.Revenue)
	}
}
