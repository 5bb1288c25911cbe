package repository

import (
	"context"

	"github.com/runwaydesk/sponsorhub/internal/domain"
)

// ActivationRepository defines the interface for activation data access
type ActivationRepository interface {
	// Create inserts a new activation
	Create(ctx context.Context, activation *domain.Activation) error
	// CreateBatch inserts all activations; meant to run inside the deal
	// submit transaction
	CreateBatch(ctx context.Context, activations []*domain.Activation) error
	// GetByID retrieves an activation by ID
	GetByID(ctx context.Context, id string) (*domain.Activation, error)
	// ListByDeal retrieves all activations for a deal
	ListByDeal(ctx context.Context, dealID string) ([]*domain.Activation, error)
	// UpdateStatus moves an activation to a new status
	UpdateStatus(ctx context.Context, id string, status domain.ActivationStatus) error
}

// DeliverableRepository defines the interface for deliverable data access
type DeliverableRepository interface {
	// Create inserts a new deliverable
	Create(ctx context.Context, deliverable *domain.Deliverable) error
	// CreateBatch inserts all deliverables; meant to run inside the deal
	// submit transaction
	CreateBatch(ctx context.Context, deliverables []*domain.Deliverable) error
	// GetByID retrieves a deliverable by ID
	GetByID(ctx context.Context, id string) (*domain.Deliverable, error)
	// ListByDeal retrieves all deliverables for a deal
	ListByDeal(ctx context.Context, dealID string) ([]*domain.Deliverable, error)
	// UpdateStatus moves a deliverable to a new status, optionally
	// recording the uploaded asset URL
	UpdateStatus(ctx context.Context, id string, status domain.DeliverableStatus, assetURL string) error
}
