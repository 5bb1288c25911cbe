package repository

import (
	"context"

	"github.com/runwaydesk/sponsorhub/internal/domain"
)

// SponsorListFilter narrows a sponsor directory listing
type SponsorListFilter struct {
	Search          string
	Industry        string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// SponsorRepository defines the interface for sponsor data access
type SponsorRepository interface {
	// Create creates a new sponsor
	Create(ctx context.Context, sponsor *domain.Sponsor) error
	// GetByID retrieves a sponsor by ID
	GetByID(ctx context.Context, id string) (*domain.Sponsor, error)
	// List retrieves sponsors with pagination and filters
	List(ctx context.Context, filter SponsorListFilter) ([]*domain.Sponsor, int, error)
	// Update updates a sponsor profile
	Update(ctx context.Context, sponsor *domain.Sponsor) error
	// Archive hides a sponsor from the directory without deleting it
	Archive(ctx context.Context, id string) error
}
