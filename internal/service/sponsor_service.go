package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/repository"
)

// SponsorService defines the interface for sponsor directory operations
type SponsorService interface {
	// Create adds a sponsor to the directory
	Create(ctx context.Context, req *dto.CreateSponsorRequest) (*dto.SponsorResponse, error)
	// GetByID retrieves a sponsor by ID
	GetByID(ctx context.Context, id string) (*dto.SponsorResponse, error)
	// List retrieves sponsors with pagination and filters
	List(ctx context.Context, filter *dto.SponsorListFilter) ([]*dto.SponsorResponse, int, error)
	// Update updates a sponsor profile
	Update(ctx context.Context, id string, req *dto.UpdateSponsorRequest) (*dto.SponsorResponse, error)
	// Archive hides a sponsor from the directory. Sponsors are never
	// hard-deleted; historical deals keep referencing them.
	Archive(ctx context.Context, id string) error
}

// sponsorService implements SponsorService
type sponsorService struct {
	sponsorRepo repository.SponsorRepository
}

// NewSponsorService creates a new SponsorService
func NewSponsorService(sponsorRepo repository.SponsorRepository) SponsorService {
	return &sponsorService{sponsorRepo: sponsorRepo}
}

// Create adds a sponsor to the directory
func (s *sponsorService) Create(ctx context.Context, req *dto.CreateSponsorRequest) (*dto.SponsorResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	now := time.Now()
	sponsor := &domain.Sponsor{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Industry:     req.Industry,
		Website:      req.Website,
		LogoURL:      req.LogoURL,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := sponsor.Validate(); err != nil {
		return nil, err
	}
	if err := s.sponsorRepo.Create(ctx, sponsor); err != nil {
		return nil, err
	}
	return s.toSponsorResponse(sponsor), nil
}

// GetByID retrieves a sponsor by ID
func (s *sponsorService) GetByID(ctx context.Context, id string) (*dto.SponsorResponse, error) {
	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toSponsorResponse(sponsor), nil
}

// List retrieves sponsors with pagination and filters
func (s *sponsorService) List(ctx context.Context, filter *dto.SponsorListFilter) ([]*dto.SponsorResponse, int, error) {
	filter.SetDefaults()
	sponsors, total, err := s.sponsorRepo.List(ctx, repository.SponsorListFilter{
		Search:          filter.Search,
		Industry:        filter.Industry,
		IncludeArchived: filter.IncludeArchived,
		Limit:           filter.Limit,
		Offset:          filter.Offset,
	})
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*dto.SponsorResponse, 0, len(sponsors))
	for _, sp := range sponsors {
		responses = append(responses, s.toSponsorResponse(sp))
	}
	return responses, total, nil
}

// Update updates a sponsor profile
func (s *sponsorService) Update(ctx context.Context, id string, req *dto.UpdateSponsorRequest) (*dto.SponsorResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	sponsor, err := s.sponsorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		sponsor.Name = *req.Name
	}
	if req.Industry != nil {
		sponsor.Industry = *req.Industry
	}
	if req.Website != nil {
		sponsor.Website = *req.Website
	}
	if req.LogoURL != nil {
		sponsor.LogoURL = *req.LogoURL
	}
	if req.ContactName != nil {
		sponsor.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		sponsor.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		sponsor.ContactPhone = *req.ContactPhone
	}
	if err := sponsor.Validate(); err != nil {
		return nil, err
	}
	if err := s.sponsorRepo.Update(ctx, sponsor); err != nil {
		return nil, err
	}
	return s.toSponsorResponse(sponsor), nil
}

// Archive hides a sponsor from the directory
func (s *sponsorService) Archive(ctx context.Context, id string) error {
	return s.sponsorRepo.Archive(ctx, id)
}

func (s *sponsorService) toSponsorResponse(sponsor *domain.Sponsor) *dto.SponsorResponse {
	return &dto.SponsorResponse{
		ID:           sponsor.ID,
		Name:         sponsor.Name,
		Industry:     sponsor.Industry,
		Website:      sponsor.Website,
		LogoURL:      sponsor.LogoURL,
		ContactName:  sponsor.ContactName,
		ContactEmail: sponsor.ContactEmail,
		ContactPhone: sponsor.ContactPhone,
		IsArchived:   sponsor.IsArchived,
		CreatedAt:    sponsor.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    sponsor.UpdatedAt.Format(time.RFC3339),
	}
}
