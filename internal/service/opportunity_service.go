package service

import (
	"context"
	"time"

	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/repository"
)

// Opportunity statuses
const (
	OpportunityStatusActive    = "Active"
	OpportunityStatusCompleted = "Completed"
)

// OpportunityService composes the inventory ledger and readiness
// aggregator into per-event read models for the sales pipeline
type OpportunityService interface {
	// GetOpportunity returns the sales view for one event
	GetOpportunity(ctx context.Context, eventID string) (*dto.OpportunityResponse, error)
	// GetReadiness returns the production health view for one event
	GetReadiness(ctx context.Context, eventID string) (*dto.ReadinessResponse, error)
}

// opportunityService implements OpportunityService
type opportunityService struct {
	eventRepo   repository.EventRepository
	dealRepo    repository.DealRepository
	packageRepo repository.PackageRepository
	ledger      *InventoryLedger
	readiness   *ReadinessAggregator
	now         func() time.Time
}

// NewOpportunityService creates a new OpportunityService
func NewOpportunityService(
	eventRepo repository.EventRepository,
	dealRepo repository.DealRepository,
	packageRepo repository.PackageRepository,
	ledger *InventoryLedger,
	readiness *ReadinessAggregator,
) OpportunityService {
	return &opportunityService{
		eventRepo:   eventRepo,
		dealRepo:    dealRepo,
		packageRepo: packageRepo,
		ledger:      ledger,
		readiness:   readiness,
		now:         time.Now,
	}
}

// GetOpportunity returns the sales view for one event. Raised sums the
// value of every slot-reserving deal; the goal is the package catalog's
// heuristic estimate and must never feed financial reporting.
func (s *opportunityService) GetOpportunity(ctx context.Context, eventID string) (*dto.OpportunityResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	deals, err := s.dealRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	packages, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var raised float64
	for _, d := range deals {
		if s.ledger.Reserving(d.Status) {
			raised += d.TotalValue()
		}
	}

	inventory := s.ledger.Compute(packages, deals)

	missing := make([]string, 0)
	for _, row := range inventory {
		if row.Sold == 0 {
			missing = append(missing, row.Name)
		}
	}

	now := s.now()
	status := OpportunityStatusCompleted
	if event.IsUpcoming(now) {
		status = OpportunityStatusActive
	}

	return &dto.OpportunityResponse{
		EventID:           event.ID,
		EventName:         event.Name,
		DaysToGo:          s.readiness.DaysToGo(event, now),
		Raised:            raised,
		GoalEstimate:      s.readiness.GoalEstimate(packages),
		Status:            status,
		Packages:          inventory,
		MissingCategories: missing,
	}, nil
}

// GetReadiness returns the production health view for one event
func (s *opportunityService) GetReadiness(ctx context.Context, eventID string) (*dto.ReadinessResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	phases, err := s.eventRepo.ListPhases(ctx, eventID)
	if err != nil {
		return nil, err
	}
	tiers, err := s.eventRepo.ListTiers(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := s.readiness.Compute(event, phases, tiers, s.now())
	return &result, nil
}
