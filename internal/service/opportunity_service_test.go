package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
)

func newOpportunityFixture(t *testing.T, reserving []string) (*memStore, OpportunityService) {
	t.Helper()

	store := newMemStore()
	svc := NewOpportunityService(
		&fakeEventRepo{store: store},
		&fakeDealRepo{store: store},
		&fakePackageRepo{store: store},
		NewInventoryLedger(reserving, 10),
		NewReadinessAggregator(),
	)
	return store, svc
}

func inventoryRow(t *testing.T, rows []dto.PackageInventory, name string) dto.PackageInventory {
	t.Helper()
	for _, row := range rows {
		if row.Name == name {
			return row
		}
	}
	t.Fatalf("no inventory row for %q", name)
	return dto.PackageInventory{}
}

func TestGetOpportunityRaisedExcludesChurned(t *testing.T) {
	store, svc := newOpportunityFixture(t, defaultReserving())
	now := time.Now()

	store.events["e1"] = &domain.Event{ID: "e1", Name: "Autumn Runway", StartTime: now.Add(10 * 24 * time.Hour)}
	store.packages["gold"] = &domain.Package{ID: "gold", Name: "Gold", DefaultPrice: 50000, DefaultSlots: 3}
	store.deals["d1"] = &domain.Deal{ID: "d1", EventID: "e1", Level: "Gold", Status: domain.DealStatusPaid, CashValue: 40000, InKindValue: 10000}
	store.deals["d2"] = &domain.Deal{ID: "d2", EventID: "e1", Level: "Gold", Status: domain.DealStatusNegotiating, CashValue: 25000}
	store.deals["d3"] = &domain.Deal{ID: "d3", EventID: "e1", Level: "Gold", Status: domain.DealStatusChurned, CashValue: 99999}

	got, err := svc.GetOpportunity(context.Background(), "e1")
	if err != nil {
		t.Fatalf("GetOpportunity() failed: %v", err)
	}
	if got.Raised != 75000 {
		t.Errorf("Raised = %v, want 75000 without the churned deal", got.Raised)
	}
	if got.Status != OpportunityStatusActive {
		t.Errorf("Status = %q, want Active for an upcoming event", got.Status)
	}

	gold := inventoryRow(t, got.Packages, "Gold")
	if gold.Sold != 2 || gold.Remaining != 1 {
		t.Errorf("gold row = %+v, want sold 2, remaining 1", gold)
	}
	if len(got.MissingCategories) != 0 {
		t.Errorf("MissingCategories = %v, want none", got.MissingCategories)
	}
}

func TestGetOpportunityMissingCategories(t *testing.T) {
	store, svc := newOpportunityFixture(t, defaultReserving())
	now := time.Now()

	store.events["e1"] = &domain.Event{ID: "e1", Name: "Autumn Runway", StartTime: now.Add(10 * 24 * time.Hour)}
	store.packages["gold"] = &domain.Package{ID: "gold", Name: "Gold", DefaultPrice: 50000, DefaultSlots: 2}
	store.packages["silver"] = &domain.Package{ID: "silver", Name: "Silver", DefaultPrice: 20000, DefaultSlots: 4}
	store.deals["d1"] = &domain.Deal{ID: "d1", EventID: "e1", Level: "Gold", Status: domain.DealStatusSigned, CashValue: 50000}

	got, err := svc.GetOpportunity(context.Background(), "e1")
	if err != nil {
		t.Fatalf("GetOpportunity() failed: %v", err)
	}
	if len(got.MissingCategories) != 1 || got.MissingCategories[0] != "Silver" {
		t.Errorf("MissingCategories = %v, want [Silver]", got.MissingCategories)
	}
	// goal = 50000*2 + 20000*4
	if got.GoalEstimate != 180000 {
		t.Errorf("GoalEstimate = %v, want 180000", got.GoalEstimate)
	}
}

// An event with no packages and no deals still renders
func TestGetOpportunityEmptyCatalog(t *testing.T) {
	store, svc := newOpportunityFixture(t, defaultReserving())

	store.events["e1"] = &domain.Event{ID: "e1", Name: "Autumn Runway", StartTime: time.Now().Add(-24 * time.Hour)}

	got, err := svc.GetOpportunity(context.Background(), "e1")
	if err != nil {
		t.Fatalf("GetOpportunity() failed: %v", err)
	}
	if got.Raised != 0 || got.GoalEstimate != 0 {
		t.Errorf("raised/goal = %v/%v, want 0/0", got.Raised, got.GoalEstimate)
	}
	if got.Packages == nil || len(got.Packages) != 0 {
		t.Errorf("Packages = %v, want empty slice", got.Packages)
	}
	if got.Status != OpportunityStatusCompleted {
		t.Errorf("Status = %q, want Completed for a past event", got.Status)
	}
	if got.DaysToGo != 0 {
		t.Errorf("DaysToGo = %d, want 0 for a past event", got.DaysToGo)
	}
}

func TestGetOpportunityUnknownEvent(t *testing.T) {
	_, svc := newOpportunityFixture(t, defaultReserving())

	_, err := svc.GetOpportunity(context.Background(), "missing")
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("GetOpportunity() error = %v, want ErrEventNotFound", err)
	}
}

func TestGetReadiness(t *testing.T) {
	store, svc := newOpportunityFixture(t, defaultReserving())
	now := time.Now()

	store.events["e1"] = &domain.Event{ID: "e1", Name: "Autumn Runway", StartTime: now.Add(7 * 24 * time.Hour)}
	store.phases["p1"] = &domain.Phase{ID: "p1", EventID: "e1", Name: "Venue Booking", Status: domain.PhaseStatusCompleted}
	store.phases["p2"] = &domain.Phase{ID: "p2", EventID: "e1", Name: "Casting", Status: domain.PhaseStatusInProgress}
	store.tiers["t1"] = &domain.TicketTier{ID: "t1", EventID: "e1", Price: 80, QuantityTotal: 300, QuantitySold: 120}

	got, err := svc.GetReadiness(context.Background(), "e1")
	if err != nil {
		t.Fatalf("GetReadiness() failed: %v", err)
	}
	if got.ReadinessPercent != 50 {
		t.Errorf("ReadinessPercent = %d, want 50", got.ReadinessPercent)
	}
	if got.PhasesCompleted != 1 || got.TotalPhases != 2 {
		t.Errorf("phases = %d/%d, want 1/2", got.PhasesCompleted, got.TotalPhases)
	}
	if got.TicketsSold != 120 || got.TotalCapacity != 300 {
		t.Errorf("tickets = %d/%d, want 120/300", got.TicketsSold, got.TotalCapacity)
	}
	if got.Revenue != 9600 {
		t.Errorf("Revenue = %v, want 9600", got.Revenue)
	}
}
