package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/repository"
)

// EventService defines the interface for event management operations
type EventService interface {
	// Create creates an event seeded with the canonical phase checklist
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	// List retrieves events with pagination and filters
	List(ctx context.Context, filter *dto.EventListFilter) ([]*dto.EventResponse, int, error)
	// Update updates an event
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)

	// CreateTier adds a ticket tier to an event
	CreateTier(ctx context.Context, eventID string, req *dto.CreateTicketTierRequest) (*dto.TicketTierResponse, error)
	// ListTiers retrieves all ticket tiers for an event
	ListTiers(ctx context.Context, eventID string) ([]*dto.TicketTierResponse, error)
	// UpdateTier updates a ticket tier, enforcing sold <= total
	UpdateTier(ctx context.Context, eventID, tierID string, req *dto.UpdateTicketTierRequest) (*dto.TicketTierResponse, error)

	// ListPhases retrieves the production checklist for an event
	ListPhases(ctx context.Context, eventID string) ([]*dto.PhaseResponse, error)
	// UpdatePhase moves a checklist phase to a new status
	UpdatePhase(ctx context.Context, eventID, phaseID string, req *dto.UpdatePhaseRequest) (*dto.PhaseResponse, error)
}

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

// Create creates an event seeded with the canonical phase checklist
func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	now := time.Now()
	event := &domain.Event{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Venue:     req.Venue,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	phases := make([]*domain.Phase, 0, len(domain.DefaultPhaseNames))
	for i, name := range domain.DefaultPhaseNames {
		phases = append(phases, &domain.Phase{
			ID:         uuid.New().String(),
			EventID:    event.ID,
			Name:       name,
			OrderIndex: i,
			Status:     domain.PhaseStatusNotStarted,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if err := s.eventRepo.CreatePhases(ctx, phases); err != nil {
		return nil, err
	}

	return s.toEventResponse(event), nil
}

// GetByID retrieves an event by ID
func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toEventResponse(event), nil
}

// List retrieves events with pagination and filters
func (s *eventService) List(ctx context.Context, filter *dto.EventListFilter) ([]*dto.EventResponse, int, error) {
	filter.SetDefaults()
	events, total, err := s.eventRepo.List(ctx, repository.EventListFilter{
		Search:   filter.Search,
		Upcoming: filter.Upcoming,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, s.toEventResponse(e))
	}
	return responses, total, nil
}

// Update updates an event
func (s *eventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return s.toEventResponse(event), nil
}

// CreateTier adds a ticket tier to an event
func (s *eventService) CreateTier(ctx context.Context, eventID string, req *dto.CreateTicketTierRequest) (*dto.TicketTierResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	now := time.Now()
	tier := &domain.TicketTier{
		ID:            uuid.New().String(),
		EventID:       eventID,
		Name:          req.Name,
		Price:         req.Price,
		QuantityTotal: req.QuantityTotal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := tier.Validate(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.CreateTier(ctx, tier); err != nil {
		return nil, err
	}
	return s.toTierResponse(tier), nil
}

// ListTiers retrieves all ticket tiers for an event
func (s *eventService) ListTiers(ctx context.Context, eventID string) ([]*dto.TicketTierResponse, error) {
	tiers, err := s.eventRepo.ListTiers(ctx, eventID)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.TicketTierResponse, 0, len(tiers))
	for _, t := range tiers {
		responses = append(responses, s.toTierResponse(t))
	}
	return responses, nil
}

// UpdateTier updates a ticket tier, enforcing sold <= total
func (s *eventService) UpdateTier(ctx context.Context, eventID, tierID string, req *dto.UpdateTicketTierRequest) (*dto.TicketTierResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	tier, err := s.eventRepo.GetTierByID(ctx, tierID)
	if err != nil {
		return nil, err
	}
	if tier.EventID != eventID {
		return nil, domain.ErrEventNotFound
	}
	if req.Name != nil {
		tier.Name = *req.Name
	}
	if req.Price != nil {
		tier.Price = *req.Price
	}
	if req.QuantityTotal != nil {
		tier.QuantityTotal = *req.QuantityTotal
	}
	if req.QuantitySold != nil {
		tier.QuantitySold = *req.QuantitySold
	}
	if err := tier.Validate(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.UpdateTier(ctx, tier); err != nil {
		return nil, err
	}
	return s.toTierResponse(tier), nil
}

// ListPhases retrieves the production checklist for an event
func (s *eventService) ListPhases(ctx context.Context, eventID string) ([]*dto.PhaseResponse, error) {
	phases, err := s.eventRepo.ListPhases(ctx, eventID)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.PhaseResponse, 0, len(phases))
	for _, p := range phases {
		responses = append(responses, s.toPhaseResponse(p))
	}
	return responses, nil
}

// UpdatePhase moves a checklist phase to a new status
func (s *eventService) UpdatePhase(ctx context.Context, eventID, phaseID string, req *dto.UpdatePhaseRequest) (*dto.PhaseResponse, error) {
	status := domain.PhaseStatus(req.Status)
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown phase status")
	}

	phase, err := s.eventRepo.GetPhaseByID(ctx, phaseID)
	if err != nil {
		return nil, err
	}
	if phase.EventID != eventID {
		return nil, domain.ErrEventNotFound
	}
	if err := s.eventRepo.UpdatePhaseStatus(ctx, phaseID, status); err != nil {
		return nil, err
	}
	phase.Status = status
	return s.toPhaseResponse(phase), nil
}

func (s *eventService) toEventResponse(event *domain.Event) *dto.EventResponse {
	resp := &dto.EventResponse{
		ID:        event.ID,
		Name:      event.Name,
		Venue:     event.Venue,
		StartTime: event.StartTime.Format(time.RFC3339),
		CreatedAt: event.CreatedAt.Format(time.RFC3339),
		UpdatedAt: event.UpdatedAt.Format(time.RFC3339),
	}
	if !event.EndTime.IsZero() {
		resp.EndTime = event.EndTime.Format(time.RFC3339)
	}
	return resp
}

func (s *eventService) toTierResponse(tier *domain.TicketTier) *dto.TicketTierResponse {
	return &dto.TicketTierResponse{
		ID:            tier.ID,
		EventID:       tier.EventID,
		Name:          tier.Name,
		Price:         tier.Price,
		QuantityTotal: tier.QuantityTotal,
		QuantitySold:  tier.QuantitySold,
		Revenue:       tier.Revenue(),
	}
}

func (s *eventService) toPhaseResponse(phase *domain.Phase) *dto.PhaseResponse {
	return &dto.PhaseResponse{
		ID:         phase.ID,
		EventID:    phase.EventID,
		Name:       phase.Name,
		OrderIndex: phase.OrderIndex,
		Status:     string(phase.Status),
	}
}
