package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/pkg/database"
)

func skipIfNoIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run.")
	}
}

func setupTestDB(t *testing.T) *database.PostgresDB {
	ctx := context.Background()

	cfg := database.DefaultPostgresConfig()
	cfg.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.User = getEnv("POSTGRES_USER", "postgres")
	cfg.Password = getEnv("POSTGRES_PASSWORD", "")
	cfg.Database = getEnv("POSTGRES_DB", "sponsorhub_test")

	db, err := database.NewPostgres(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func seedEventAndSponsor(t *testing.T, db *database.PostgresDB) (string, string) {
	ctx := context.Background()
	now := time.Now()

	eventID := uuid.NewString()
	_, err := db.Pool().Exec(ctx, `
		INSERT INTO events (id, name, start_time, created_at, updated_at)
		VALUES ($1, 'test-event', $2, $3, $3)`,
		eventID, now.Add(30*24*time.Hour), now)
	if err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}

	sponsorID := uuid.NewString()
	_, err = db.Pool().Exec(ctx, `
		INSERT INTO sponsors (id, name, is_archived, created_at, updated_at)
		VALUES ($1, 'test-sponsor', FALSE, $2, $2)`,
		sponsorID, now)
	if err != nil {
		t.Fatalf("Failed to seed sponsor: %v", err)
	}
	return eventID, sponsorID
}

func newTestDeal(eventID, sponsorID string) *domain.Deal {
	now := time.Now()
	return &domain.Deal{
		ID:        uuid.NewString(),
		EventID:   eventID,
		SponsorID: sponsorID,
		Status:    domain.DealStatusNegotiating,
		Level:     "Gold",
		CashValue: 50000,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUpdateStatusOptimistic(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	eventID, sponsorID := seedEventAndSponsor(t, db)
	repo := NewPostgresDealRepository(db)

	deal := newTestDeal(eventID, sponsorID)
	if err := repo.Create(ctx, deal); err != nil {
		t.Fatalf("Failed to create deal: %v", err)
	}

	// First writer wins
	err := repo.UpdateStatus(ctx, deal.ID, domain.DealStatusNegotiating, domain.DealStatusSigned, "")
	if err != nil {
		t.Fatalf("UpdateStatus() failed: %v", err)
	}

	// Second writer raced on the same expected status and must lose
	err = repo.UpdateStatus(ctx, deal.ID, domain.DealStatusNegotiating, domain.DealStatusChurned, "")
	if !errors.Is(err, domain.ErrStaleStatus) {
		t.Errorf("UpdateStatus() error = %v, want ErrStaleStatus", err)
	}

	got, err := repo.GetByID(ctx, deal.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Status != domain.DealStatusSigned {
		t.Errorf("status = %q, want signed", got.Status)
	}
}

func TestUpdateStatusMissingDeal(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()

	repo := NewPostgresDealRepository(db)
	err := repo.UpdateStatus(context.Background(), uuid.NewString(), domain.DealStatusLead, domain.DealStatusContacted, "")
	if !errors.Is(err, domain.ErrDealNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrDealNotFound", err)
	}
}

func TestSubmitTransactionRollsBack(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	eventID, sponsorID := seedEventAndSponsor(t, db)
	dealRepo := NewPostgresDealRepository(db)
	actRepo := NewPostgresActivationRepository(db)

	deal := newTestDeal(eventID, sponsorID)
	bad := &domain.Activation{
		ID:     uuid.NewString(),
		DealID: uuid.NewString(), // dangling FK forces the insert to fail
		Title:  "Runway Branding",
		Status: domain.ActivationStatusPlanning,
	}

	err := dealRepo.WithTx(ctx, func(ctx context.Context) error {
		if err := dealRepo.Create(ctx, deal); err != nil {
			return err
		}
		return actRepo.Create(ctx, bad)
	})
	if err == nil {
		t.Fatal("WithTx() succeeded, want FK failure")
	}

	// The deal insert must have rolled back with the activation
	if _, err := dealRepo.GetByID(ctx, deal.ID); !errors.Is(err, domain.ErrDealNotFound) {
		t.Errorf("GetByID() error = %v, want ErrDealNotFound after rollback", err)
	}
}

func TestIdempotencyKeyUnique(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	ctx := context.Background()

	eventID, sponsorID := seedEventAndSponsor(t, db)
	repo := NewPostgresDealRepository(db)

	key := uuid.NewString()
	first := newTestDeal(eventID, sponsorID)
	first.IdempotencyKey = key
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Failed to create deal: %v", err)
	}

	second := newTestDeal(eventID, sponsorID)
	second.IdempotencyKey = key
	if err := repo.Create(ctx, second); !errors.Is(err, domain.ErrDuplicateSubmit) {
		t.Errorf("Create() error = %v, want ErrDuplicateSubmit", err)
	}

	found, err := repo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		t.Fatalf("GetByIdempotencyKey() failed: %v", err)
	}
	if found == nil || found.ID != first.ID {
		t.Errorf("GetByIdempotencyKey() = %v, want first deal", found)
	}
}
