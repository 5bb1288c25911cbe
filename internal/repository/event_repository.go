package repository

import (
	"context"

	"github.com/runwaydesk/sponsorhub/internal/domain"
)

// EventListFilter narrows an event listing
type EventListFilter struct {
	Search   string
	Upcoming bool
	Limit    int
	Offset   int
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List retrieves events with pagination and filters
	List(ctx context.Context, filter EventListFilter) ([]*domain.Event, int, error)
	// Update updates an event
	Update(ctx context.Context, event *domain.Event) error

	// CreateTier adds a ticket tier to an event
	CreateTier(ctx context.Context, tier *domain.TicketTier) error
	// GetTierByID retrieves a ticket tier by ID
	GetTierByID(ctx context.Context, id string) (*domain.TicketTier, error)
	// ListTiers retrieves all ticket tiers for an event
	ListTiers(ctx context.Context, eventID string) ([]*domain.TicketTier, error)
	// UpdateTier updates a ticket tier
	UpdateTier(ctx context.Context, tier *domain.TicketTier) error

	// CreatePhases inserts a batch of production phases for an event
	CreatePhases(ctx context.Context, phases []*domain.Phase) error
	// GetPhaseByID retrieves a phase by ID
	GetPhaseByID(ctx context.Context, id string) (*domain.Phase, error)
	// ListPhases retrieves all phases for an event ordered by position
	ListPhases(ctx context.Context, eventID string) ([]*domain.Phase, error)
	// UpdatePhaseStatus moves a checklist phase to a new status
	UpdatePhaseStatus(ctx context.Context, id string, status domain.PhaseStatus) error
}
