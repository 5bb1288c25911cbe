package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/repository"
)

// DeliverableService defines the interface for sponsor deliverable operations
type DeliverableService interface {
	// Create adds a deliverable to an existing deal
	Create(ctx context.Context, dealID string, req *dto.CreateDeliverableRequest) (*dto.DeliverableResponse, error)
	// ListByDeal retrieves all deliverables for a deal
	ListByDeal(ctx context.Context, dealID string) ([]*dto.DeliverableResponse, error)
	// Upload records the asset URL returned by the storage service and
	// moves the deliverable to uploaded
	Upload(ctx context.Context, id string, req *dto.UploadDeliverableRequest) (*dto.DeliverableResponse, error)
	// Review approves or rejects an uploaded deliverable. A rejection
	// loops the status back to pending for a re-upload.
	Review(ctx context.Context, id string, req *dto.ReviewDeliverableRequest) (*dto.DeliverableResponse, error)
}

// deliverableService implements DeliverableService
type deliverableService struct {
	deliverableRepo repository.DeliverableRepository
	dealRepo        repository.DealRepository
}

// NewDeliverableService creates a new DeliverableService
func NewDeliverableService(deliverableRepo repository.DeliverableRepository, dealRepo repository.DealRepository) DeliverableService {
	return &deliverableService{deliverableRepo: deliverableRepo, dealRepo: dealRepo}
}

// Create adds a deliverable to an existing deal
func (s *deliverableService) Create(ctx context.Context, dealID string, req *dto.CreateDeliverableRequest) (*dto.DeliverableResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}
	if _, err := s.dealRepo.GetByID(ctx, dealID); err != nil {
		return nil, err
	}

	now := time.Now()
	deliverable := &domain.Deliverable{
		ID:        uuid.New().String(),
		DealID:    dealID,
		Title:     req.Title,
		DueDate:   req.DueDate,
		Status:    domain.DeliverableStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := deliverable.Validate(); err != nil {
		return nil, err
	}
	if err := s.deliverableRepo.Create(ctx, deliverable); err != nil {
		return nil, err
	}
	return s.toDeliverableResponse(deliverable), nil
}

// ListByDeal retrieves all deliverables for a deal
func (s *deliverableService) ListByDeal(ctx context.Context, dealID string) ([]*dto.DeliverableResponse, error) {
	deliverables, err := s.deliverableRepo.ListByDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.DeliverableResponse, 0, len(deliverables))
	for _, d := range deliverables {
		responses = append(responses, s.toDeliverableResponse(d))
	}
	return responses, nil
}

// Upload records the asset URL and moves the deliverable to uploaded
func (s *deliverableService) Upload(ctx context.Context, id string, req *dto.UploadDeliverableRequest) (*dto.DeliverableResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	deliverable, err := s.deliverableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result, err := domain.TransitionDeliverable(deliverable.Status, domain.DeliverableStatusUploaded)
	if err != nil {
		return nil, err
	}
	if err := s.deliverableRepo.UpdateStatus(ctx, id, domain.DeliverableStatus(result.NewStatus), req.AssetURL); err != nil {
		return nil, err
	}
	deliverable.Status = domain.DeliverableStatus(result.NewStatus)
	deliverable.AssetURL = req.AssetURL
	deliverable.UpdatedAt = time.Now()
	return s.toDeliverableResponse(deliverable), nil
}

// Review approves or rejects an uploaded deliverable
func (s *deliverableService) Review(ctx context.Context, id string, req *dto.ReviewDeliverableRequest) (*dto.DeliverableResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	deliverable, err := s.deliverableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Uploaded assets pass through reviewing on their way to a decision
	if deliverable.Status == domain.DeliverableStatusUploaded {
		if err := s.deliverableRepo.UpdateStatus(ctx, id, domain.DeliverableStatusReviewing, ""); err != nil {
			return nil, err
		}
		deliverable.Status = domain.DeliverableStatusReviewing
	}

	decision := domain.DeliverableStatus(req.Decision)
	result, err := domain.TransitionDeliverable(deliverable.Status, decision)
	if err != nil {
		return nil, err
	}
	next := domain.DeliverableStatus(result.NewStatus)
	if err := s.deliverableRepo.UpdateStatus(ctx, id, next, ""); err != nil {
		return nil, err
	}
	deliverable.Status = next
	deliverable.UpdatedAt = time.Now()

	// A rejection sends the deliverable back to pending for re-upload
	if next == domain.DeliverableStatusRejected {
		if err := s.deliverableRepo.UpdateStatus(ctx, id, domain.DeliverableStatusPending, ""); err != nil {
			return nil, err
		}
		deliverable.Status = domain.DeliverableStatusPending
	}

	return s.toDeliverableResponse(deliverable), nil
}

func (s *deliverableService) toDeliverableResponse(d *domain.Deliverable) *dto.DeliverableResponse {
	resp := &dto.DeliverableResponse{
		ID:        d.ID,
		DealID:    d.DealID,
		Title:     d.Title,
		Status:    string(d.Status),
		AssetURL:  d.AssetURL,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
	if d.DueDate != nil {
		resp.DueDate = d.DueDate.Format(time.RFC3339)
	}
	return resp
}
