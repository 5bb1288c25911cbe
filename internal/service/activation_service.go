package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/repository"
)

// ActivationService defines the interface for brand activation operations
type ActivationService interface {
	// Create adds an activation to an existing deal
	Create(ctx context.Context, dealID string, req *dto.CreateActivationRequest) (*dto.ActivationResponse, error)
	// ListByDeal retrieves all activations for a deal
	ListByDeal(ctx context.Context, dealID string) ([]*dto.ActivationResponse, error)
	// UpdateStatus moves an activation along its pipeline
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateActivationStatusRequest) (*dto.ActivationResponse, error)
}

// activationService implements ActivationService
type activationService struct {
	activationRepo repository.ActivationRepository
	dealRepo       repository.DealRepository
}

// NewActivationService creates a new ActivationService
func NewActivationService(activationRepo repository.ActivationRepository, dealRepo repository.DealRepository) ActivationService {
	return &activationService{activationRepo: activationRepo, dealRepo: dealRepo}
}

// Create adds an activation to an existing deal
func (s *activationService) Create(ctx context.Context, dealID string, req *dto.CreateActivationRequest) (*dto.ActivationResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}
	if _, err := s.dealRepo.GetByID(ctx, dealID); err != nil {
		return nil, err
	}

	now := time.Now()
	activation := &domain.Activation{
		ID:          uuid.New().String(),
		DealID:      dealID,
		Title:       req.Title,
		Type:        req.Type,
		Status:      domain.ActivationStatusPlanning,
		Location:    req.Location,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := activation.Validate(); err != nil {
		return nil, err
	}
	if err := s.activationRepo.Create(ctx, activation); err != nil {
		return nil, err
	}
	return s.toActivationResponse(activation), nil
}

// ListByDeal retrieves all activations for a deal
func (s *activationService) ListByDeal(ctx context.Context, dealID string) ([]*dto.ActivationResponse, error) {
	activations, err := s.activationRepo.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.ActivationResponse, 0, len(activations))
	for _, a := range activations {
		responses = append(responses, s.toActivationResponse(a))
	}
	return responses, nil
}

// UpdateStatus moves an activation along its pipeline. Force lets an
// operator skip forward; nothing moves backward.
func (s *activationService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateActivationStatusRequest) (*dto.ActivationResponse, error) {
	activation, err := s.activationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := domain.TransitionActivation(activation.Status, domain.ActivationStatus(req.Status), req.Force)
	if err != nil {
		return nil, err
	}
	if !result.NoOp {
		if err := s.activationRepo.UpdateStatus(ctx, id, domain.ActivationStatus(result.NewStatus)); err != nil {
			return nil, err
		}
		activation.Status = domain.ActivationStatus(result.NewStatus)
		activation.UpdatedAt = time.Now()
	}
	return s.toActivationResponse(activation), nil
}

func (s *activationService) toActivationResponse(a *domain.Activation) *dto.ActivationResponse {
	return &dto.ActivationResponse{
		ID:          a.ID,
		DealID:      a.DealID,
		Title:       a.Title,
		Type:        a.Type,
		Status:      string(a.Status),
		Location:    a.Location,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}
