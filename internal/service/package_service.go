package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/repository"
)

// PackageService defines the interface for the sponsorship package catalog
type PackageService interface {
	// Create creates a package template
	Create(ctx context.Context, req *dto.CreatePackageRequest) (*dto.PackageResponse, error)
	// GetByID retrieves a package by ID
	GetByID(ctx context.Context, id string) (*dto.PackageResponse, error)
	// List retrieves the full catalog
	List(ctx context.Context) ([]*dto.PackageResponse, error)
	// Update updates a package template
	Update(ctx context.Context, id string, req *dto.UpdatePackageRequest) (*dto.PackageResponse, error)
	// GetAvailability reports remaining inventory for one package on one event
	GetAvailability(ctx context.Context, packageID, eventID string) (*dto.PackageAvailabilityResponse, error)
}

// packageService implements PackageService
type packageService struct {
	packageRepo repository.PackageRepository
	dealRepo    repository.DealRepository
	ledger      *InventoryLedger
}

// NewPackageService creates a new PackageService
func NewPackageService(packageRepo repository.PackageRepository, dealRepo repository.DealRepository, ledger *InventoryLedger) PackageService {
	return &packageService{packageRepo: packageRepo, dealRepo: dealRepo, ledger: ledger}
}

// Create creates a package template
func (s *packageService) Create(ctx context.Context, req *dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	now := time.Now()
	pkg := &domain.Package{
		ID:           uuid.New().String(),
		Name:         req.Name,
		DefaultPrice: req.DefaultPrice,
		DefaultSlots: req.DefaultSlots,
		Deliverables: toDeliverableTemplates(req.Deliverables),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return s.toPackageResponse(pkg), nil
}

// GetByID retrieves a package by ID
func (s *packageService) GetByID(ctx context.Context, id string) (*dto.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toPackageResponse(pkg), nil
}

// List retrieves the full catalog
func (s *packageService) List(ctx context.Context) ([]*dto.PackageResponse, error) {
	packages, err := s.packageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		responses = append(responses, s.toPackageResponse(p))
	}
	return responses, nil
}

// Update updates a package template
func (s *packageService) Update(ctx context.Context, id string, req *dto.UpdatePackageRequest) (*dto.PackageResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.DefaultPrice != nil {
		pkg.DefaultPrice = *req.DefaultPrice
	}
	if req.DefaultSlots != nil {
		pkg.DefaultSlots = *req.DefaultSlots
	}
	if req.Deliverables != nil {
		pkg.Deliverables = toDeliverableTemplates(req.Deliverables)
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return s.toPackageResponse(pkg), nil
}

// GetAvailability reports remaining inventory for one package on one
// event. A read-side snapshot; the binding check happens inside the
// submit transaction.
func (s *packageService) GetAvailability(ctx context.Context, packageID, eventID string) (*dto.PackageAvailabilityResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	deals, err := s.dealRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	sold := s.ledger.Sold(pkg, deals)
	remaining := s.ledger.Remaining(pkg, sold)
	return &dto.PackageAvailabilityResponse{
		PackageID:  pkg.ID,
		EventID:    eventID,
		TotalSlots: pkg.SlotsOrDefault(s.ledger.defaultSlots),
		Sold:       sold,
		Remaining:  remaining,
		Label:      Label(remaining),
	}, nil
}

func toDeliverableTemplates(inputs []dto.DeliverableTemplateInput) []domain.DeliverableTemplate {
	templates := make([]domain.DeliverableTemplate, 0, len(inputs))
	for _, in := range inputs {
		templates = append(templates, domain.DeliverableTemplate{
			Title:     in.Title,
			DueInDays: in.DueInDays,
		})
	}
	return templates
}

func (s *packageService) toPackageResponse(pkg *domain.Package) *dto.PackageResponse {
	deliverables := make([]dto.DeliverableTemplateInput, 0, len(pkg.Deliverables))
	for _, d := range pkg.Deliverables {
		deliverables = append(deliverables, dto.DeliverableTemplateInput{
			Title:     d.Title,
			DueInDays: d.DueInDays,
		})
	}
	return &dto.PackageResponse{
		ID:           pkg.ID,
		Name:         pkg.Name,
		DefaultPrice: pkg.DefaultPrice,
		DefaultSlots: pkg.DefaultSlots,
		Deliverables: deliverables,
		CreatedAt:    pkg.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    pkg.UpdatedAt.Format(time.RFC3339),
	}
}
