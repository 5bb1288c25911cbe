package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/pkg/config"
)

type dealServiceFixture struct {
	store          *memStore
	dealRepo       *fakeDealRepo
	activationRepo *fakeActivationRepo
	publisher      *recordingPublisher
	service        DealService
}

func newDealServiceFixture(t *testing.T, policy string) *dealServiceFixture {
	t.Helper()

	store := newMemStore()
	now := time.Now()
	store.sponsors["s1"] = &domain.Sponsor{ID: "s1", Name: "Maison Lumière", CreatedAt: now}
	store.events["e1"] = &domain.Event{ID: "e1", Name: "Autumn Runway", StartTime: now.Add(30 * 24 * time.Hour)}
	store.packages["gold"] = &domain.Package{
		ID: "gold", Name: "Gold", DefaultPrice: 50000, DefaultSlots: 2,
		Deliverables: []domain.DeliverableTemplate{{Title: "Logo Pack", DueInDays: 7}},
	}

	log, err := loggerForTest()
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	dealRepo := &fakeDealRepo{store: store}
	activationRepo := &fakeActivationRepo{store: store}
	publisher := &recordingPublisher{}
	ledger := NewInventoryLedger(defaultReserving(), 10)

	svc := NewDealService(
		dealRepo,
		activationRepo,
		&fakeDeliverableRepo{store: store},
		&fakePackageRepo{store: store},
		&fakeSponsorRepo{store: store},
		&fakeEventRepo{store: store},
		ledger,
		policy,
		publisher,
		log,
	)

	return &dealServiceFixture{
		store:          store,
		dealRepo:       dealRepo,
		activationRepo: activationRepo,
		publisher:      publisher,
		service:        svc,
	}
}

func submitRequest() *dto.SubmitDealRequest {
	return &dto.SubmitDealRequest{
		EventID:   "e1",
		SponsorID: "s1",
		PackageID: "gold",
		CashValue: 50000,
		Activations: []dto.ActivationInput{
			{Title: "Runway Branding", Type: "signage"},
			{Title: "VIP Lounge", Type: "experience"},
		},
	}
}

func TestSubmitCreatesDealWithActivationsAndDeliverables(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)

	got, err := f.service.Submit(context.Background(), submitRequest())
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if got.Status != string(domain.DealStatusNegotiating) {
		t.Errorf("status = %q, want negotiating without a signed contract", got.Status)
	}
	if got.Level != "Gold" {
		t.Errorf("level = %q, want Gold", got.Level)
	}
	if len(f.store.activations) != 2 {
		t.Errorf("persisted %d activations, want 2", len(f.store.activations))
	}
	for _, a := range f.store.activations {
		if a.DealID != got.ID {
			t.Errorf("activation references deal %q, want %q", a.DealID, got.ID)
		}
		if a.Status != domain.ActivationStatusPlanning {
			t.Errorf("activation status = %q, want planning", a.Status)
		}
	}
	if len(f.store.deliverables) != 1 {
		t.Errorf("persisted %d deliverables, want 1 from the package template", len(f.store.deliverables))
	}
	if len(f.publisher.submitted) != 1 {
		t.Errorf("published %d submitted events, want 1", len(f.publisher.submitted))
	}
}

func TestSubmitSignedContractStartsSigned(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)

	req := submitRequest()
	req.ContractSigned = true
	req.ContractURL = "https://cdn.example.com/contracts/ml.pdf"

	got, err := f.service.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if got.Status != string(domain.DealStatusSigned) {
		t.Errorf("status = %q, want signed", got.Status)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("warnings = %v, want none with a contract attached", got.Warnings)
	}
}

func TestSubmitSignedWithoutContractWarns(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)

	req := submitRequest()
	req.ContractSigned = true

	got, err := f.service.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if len(got.Warnings) != 1 || got.Warnings[0] != domain.WarningContractPending {
		t.Errorf("warnings = %v, want [%s]", got.Warnings, domain.WarningContractPending)
	}
}

// Gold has two slots; the third submit must be rejected with the
// inventory error and write nothing
func TestSubmitSoldOutPackage(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.service.Submit(ctx, submitRequest()); err != nil {
			t.Fatalf("Submit() %d failed: %v", i, err)
		}
	}

	_, err := f.service.Submit(ctx, submitRequest())
	if !errors.Is(err, domain.ErrInventoryExhausted) {
		t.Fatalf("Submit() error = %v, want ErrInventoryExhausted", err)
	}
	if len(f.store.deals) != 2 {
		t.Errorf("store holds %d deals, want 2", len(f.store.deals))
	}
}

// A churned deal frees its slot
func TestSubmitAfterChurnReopensSlot(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)
	ctx := context.Background()

	first, err := f.service.Submit(ctx, submitRequest())
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if _, err := f.service.Submit(ctx, submitRequest()); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	f.store.deals[first.ID].Status = domain.DealStatusChurned

	if _, err := f.service.Submit(ctx, submitRequest()); err != nil {
		t.Errorf("Submit() after churn failed: %v", err)
	}
}

// Best effort skips the guard and accepts the oversell
func TestSubmitBestEffortAllowsOversell(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyBestEffort)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := f.service.Submit(ctx, submitRequest()); err != nil {
			t.Fatalf("Submit() %d failed under best_effort: %v", i, err)
		}
	}
	if len(f.store.deals) != 3 {
		t.Errorf("store holds %d deals, want 3", len(f.store.deals))
	}
}

// A failed activation insert must leave no deal behind
func TestSubmitRollsBackOnActivationFailure(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)
	f.activationRepo.failCreate = true

	_, err := f.service.Submit(context.Background(), submitRequest())
	if !errors.Is(err, domain.ErrCommitFailed) {
		t.Fatalf("Submit() error = %v, want ErrCommitFailed", err)
	}
	if len(f.store.deals) != 0 {
		t.Errorf("store holds %d deals after rollback, want 0", len(f.store.deals))
	}
	if len(f.store.activations) != 0 {
		t.Errorf("store holds %d activations after rollback, want 0", len(f.store.activations))
	}
	if len(f.publisher.submitted) != 0 {
		t.Errorf("published %d events for a failed submit, want 0", len(f.publisher.submitted))
	}
}

// Re-submitting with the same idempotency key returns the committed
// deal instead of creating a duplicate
func TestSubmitIdempotent(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)
	ctx := context.Background()

	req := submitRequest()
	req.IdempotencyKey = "wizard-42"

	first, err := f.service.Submit(ctx, req)
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	second, err := f.service.Submit(ctx, req)
	if err != nil {
		t.Fatalf("Resubmit() failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("resubmit returned deal %q, want %q", second.ID, first.ID)
	}
	if len(f.store.deals) != 1 {
		t.Errorf("store holds %d deals, want 1", len(f.store.deals))
	}
}

func TestSubmitRejectsNegativeMoney(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)

	req := submitRequest()
	req.CashValue = -100

	_, err := f.service.Submit(context.Background(), req)
	if !domain.IsValidationError(err) {
		t.Errorf("Submit() error = %v, want validation error", err)
	}
	if len(f.store.deals) != 0 {
		t.Errorf("store holds %d deals, want 0 after rejected input", len(f.store.deals))
	}
}

func TestUpdateStatusValidTransition(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)
	ctx := context.Background()

	deal, err := f.service.Submit(ctx, submitRequest())
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	got, err := f.service.UpdateStatus(ctx, deal.ID, &dto.UpdateDealStatusRequest{
		Status:         "signed",
		ExpectedStatus: "negotiating",
	})
	if err != nil {
		t.Fatalf("UpdateStatus() failed: %v", err)
	}
	if got.Status != "signed" {
		t.Errorf("status = %q, want signed", got.Status)
	}
	if len(f.publisher.statusChanges) != 1 {
		t.Errorf("published %d status events, want 1", len(f.publisher.statusChanges))
	}
}

// Negotiating cannot jump straight to paid
func TestUpdateStatusSkipRejected(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)
	ctx := context.Background()

	deal, err := f.service.Submit(ctx, submitRequest())
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	_, err = f.service.UpdateStatus(ctx, deal.ID, &dto.UpdateDealStatusRequest{
		Status:         "paid",
		ExpectedStatus: "negotiating",
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("UpdateStatus() error = %v, want ErrInvalidTransition", err)
	}

	stored := f.store.deals[deal.ID]
	if stored.Status != domain.DealStatusNegotiating {
		t.Errorf("stored status = %q, want unchanged negotiating", stored.Status)
	}
}

// The second of two racing writers is told its read went stale
func TestUpdateStatusStale(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)
	ctx := context.Background()

	deal, err := f.service.Submit(ctx, submitRequest())
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	if _, err := f.service.UpdateStatus(ctx, deal.ID, &dto.UpdateDealStatusRequest{
		Status:         "signed",
		ExpectedStatus: "negotiating",
	}); err != nil {
		t.Fatalf("UpdateStatus() failed: %v", err)
	}

	_, err = f.service.UpdateStatus(ctx, deal.ID, &dto.UpdateDealStatusRequest{
		Status:         "churned",
		ExpectedStatus: "negotiating",
		Reason:         "went quiet",
	})
	if !errors.Is(err, domain.ErrStaleStatus) {
		t.Errorf("UpdateStatus() error = %v, want ErrStaleStatus", err)
	}
}

func TestUpdateStatusNoOp(t *testing.T) {
	f := newDealServiceFixture(t, config.InventoryPolicyStrict)
	ctx := context.Background()

	deal, err := f.service.Submit(ctx, submitRequest())
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	got, err := f.service.UpdateStatus(ctx, deal.ID, &dto.UpdateDealStatusRequest{
		Status:         "negotiating",
		ExpectedStatus: "negotiating",
	})
	if err != nil {
		t.Fatalf("UpdateStatus() no-op failed: %v", err)
	}
	if got.Status != "negotiating" {
		t.Errorf("status = %q, want negotiating", got.Status)
	}
	if len(f.publisher.statusChanges) != 0 {
		t.Errorf("published %d status events for a no-op, want 0", len(f.publisher.statusChanges))
	}
}
