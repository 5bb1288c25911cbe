package repository

import (
	"context"

	"github.com/runwaydesk/sponsorhub/internal/domain"
)

// DealListFilter narrows a deal listing
type DealListFilter struct {
	EventID   string
	SponsorID string
	Status    string
	Limit     int
	Offset    int
}

// DealRepository defines the interface for deal data access
type DealRepository interface {
	// WithTx runs fn inside a single transaction. Repository calls made
	// with the ctx passed to fn join that transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	// Create inserts a new deal
	Create(ctx context.Context, deal *domain.Deal) error
	// GetByID retrieves a deal by ID
	GetByID(ctx context.Context, id string) (*domain.Deal, error)
	// GetByIdempotencyKey retrieves the deal a prior submit created with
	// this key, or nil when no such submit happened
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Deal, error)
	// List retrieves deals with pagination and filters
	List(ctx context.Context, filter DealListFilter) ([]*domain.Deal, int, error)
	// ListByEvent retrieves every deal for an event
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Deal, error)
	// CountReserving counts deals on an event/level whose status is one
	// of the given reserving statuses
	CountReserving(ctx context.Context, eventID, level string, statuses []string) (int, error)
	// Update updates deal terms
	Update(ctx context.Context, deal *domain.Deal) error
	// UpdateStatus moves a deal to a new status only if its stored
	// status still equals expected, recording an audit row with the
	// transition reason. Returns domain.ErrStaleStatus on a mismatch.
	UpdateStatus(ctx context.Context, id string, expected, next domain.DealStatus, reason string) error
}
