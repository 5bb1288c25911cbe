package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/repository"
	"github.com/runwaydesk/sponsorhub/pkg/config"
	"github.com/runwaydesk/sponsorhub/pkg/logger"
	"go.uber.org/zap"
)

// DealService defines the interface for deal lifecycle operations
type DealService interface {
	// Submit atomically persists a deal with its staged activations and
	// templated deliverables. Safe to retry with the same idempotency key.
	Submit(ctx context.Context, req *dto.SubmitDealRequest) (*dto.DealResponse, error)
	// GetByID retrieves a deal by ID
	GetByID(ctx context.Context, id string) (*dto.DealResponse, error)
	// List retrieves deals with pagination and filters
	List(ctx context.Context, filter *dto.DealListFilter) ([]*dto.DealResponse, int, error)
	// Update updates deal terms
	Update(ctx context.Context, id string, req *dto.UpdateDealRequest) (*dto.DealResponse, error)
	// UpdateStatus transitions a deal's status with an optimistic guard
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateDealStatusRequest) (*dto.DealResponse, error)
}

// dealService implements DealService
type dealService struct {
	dealRepo        repository.DealRepository
	activationRepo  repository.ActivationRepository
	deliverableRepo repository.DeliverableRepository
	packageRepo     repository.PackageRepository
	sponsorRepo     repository.SponsorRepository
	eventRepo       repository.EventRepository
	ledger          *InventoryLedger
	policy          string
	publisher       DealEventPublisher
	log             *logger.Logger
}

// NewDealService creates a new DealService
func NewDealService(
	dealRepo repository.DealRepository,
	activationRepo repository.ActivationRepository,
	deliverableRepo repository.DeliverableRepository,
	packageRepo repository.PackageRepository,
	sponsorRepo repository.SponsorRepository,
	eventRepo repository.EventRepository,
	ledger *InventoryLedger,
	policy string,
	publisher DealEventPublisher,
	log *logger.Logger,
) DealService {
	return &dealService{
		dealRepo:        dealRepo,
		activationRepo:  activationRepo,
		deliverableRepo: deliverableRepo,
		packageRepo:     packageRepo,
		sponsorRepo:     sponsorRepo,
		eventRepo:       eventRepo,
		ledger:          ledger,
		policy:          policy,
		publisher:       publisher,
		log:             log,
	}
}

// Submit atomically persists a deal with its staged activations and
// templated deliverables
func (s *dealService) Submit(ctx context.Context, req *dto.SubmitDealRequest) (*dto.DealResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	// A prior submit with this key already committed; return its deal
	// instead of creating a duplicate.
	if req.IdempotencyKey != "" {
		existing, err := s.dealRepo.GetByIdempotencyKey(ctx, req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return s.toDealResponse(existing, nil), nil
		}
	}

	if _, err := s.sponsorRepo.GetByID(ctx, req.SponsorID); err != nil {
		return nil, err
	}
	if _, err := s.eventRepo.GetByID(ctx, req.EventID); err != nil {
		return nil, err
	}

	status := domain.InitialDealStatus(req.ContractSigned)
	now := time.Now()
	deal := &domain.Deal{
		ID:             uuid.New().String(),
		EventID:        req.EventID,
		SponsorID:      req.SponsorID,
		Status:         status,
		CashValue:      req.CashValue,
		InKindValue:    req.InKindValue,
		ContractURL:    req.ContractURL,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	txErr := s.dealRepo.WithTx(ctx, func(ctx context.Context) error {
		pkg, err := s.lockPackage(ctx, req.PackageID)
		if err != nil {
			return err
		}
		deal.Level = pkg.Name

		if s.policy == config.InventoryPolicyStrict {
			sold, err := s.dealRepo.CountReserving(ctx, req.EventID, pkg.Name, s.ledger.ReservingStatuses())
			if err != nil {
				return err
			}
			if s.ledger.Remaining(pkg, sold) <= 0 {
				return domain.ErrInventoryExhausted
			}
		}

		if err := deal.Validate(); err != nil {
			return err
		}
		if err := s.dealRepo.Create(ctx, deal); err != nil {
			return err
		}

		activations := make([]*domain.Activation, 0, len(req.Activations))
		for _, in := range req.Activations {
			activations = append(activations, &domain.Activation{
				ID:          uuid.New().String(),
				DealID:      deal.ID,
				Title:       in.Title,
				Type:        in.Type,
				Status:      domain.ActivationStatusPlanning,
				Location:    in.Location,
				Description: in.Description,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		if err := s.activationRepo.CreateBatch(ctx, activations); err != nil {
			return err
		}

		return s.deliverableRepo.CreateBatch(ctx, s.templateDeliverables(deal, pkg, now))
	})
	if txErr != nil {
		// A concurrent submit with the same key won the race; its deal
		// is the canonical result.
		if errors.Is(txErr, domain.ErrDuplicateSubmit) && req.IdempotencyKey != "" {
			existing, err := s.dealRepo.GetByIdempotencyKey(ctx, req.IdempotencyKey)
			if err == nil && existing != nil {
				return s.toDealResponse(existing, nil), nil
			}
		}
		return nil, s.classifySubmitError(ctx, req.IdempotencyKey, txErr)
	}

	s.publisher.PublishDealSubmitted(ctx, deal)
	s.log.InfoContext(ctx, "deal submitted",
		zap.String("deal_id", deal.ID),
		zap.String("event_id", deal.EventID),
		zap.String("level", deal.Level),
		zap.String("status", string(deal.Status)))

	var warnings []string
	if deal.Status == domain.DealStatusSigned && !deal.HasContract() {
		warnings = append(warnings, domain.WarningContractPending)
	}
	return s.toDealResponse(deal, warnings), nil
}

// lockPackage resolves the package, taking the row lock under the
// strict policy so concurrent submits serialize.
func (s *dealService) lockPackage(ctx context.Context, id string) (*domain.Package, error) {
	if s.policy == config.InventoryPolicyStrict {
		return s.packageRepo.GetByIDForUpdate(ctx, id)
	}
	return s.packageRepo.GetByID(ctx, id)
}

// templateDeliverables seeds deliverable rows from the package template.
// Due dates are anchored to submit time only when the contract is
// already signed.
func (s *dealService) templateDeliverables(deal *domain.Deal, pkg *domain.Package, now time.Time) []*domain.Deliverable {
	deliverables := make([]*domain.Deliverable, 0, len(pkg.Deliverables))
	for _, tpl := range pkg.Deliverables {
		d := &domain.Deliverable{
			ID:        uuid.New().String(),
			DealID:    deal.ID,
			Title:     tpl.Title,
			Status:    domain.DeliverableStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if deal.Status == domain.DealStatusSigned && tpl.DueInDays > 0 {
			due := now.AddDate(0, 0, tpl.DueInDays)
			d.DueDate = &due
		}
		deliverables = append(deliverables, d)
	}
	return deliverables
}

// classifySubmitError maps a failed submit transaction to the error
// taxonomy. A duplicate-key race resolves to the winner's deal; domain
// errors pass through; everything else is a commit failure.
func (s *dealService) classifySubmitError(ctx context.Context, idempotencyKey string, err error) error {
	if errors.Is(err, domain.ErrDuplicateSubmit) && idempotencyKey != "" {
		return err
	}
	if errors.Is(err, domain.ErrInventoryExhausted) ||
		errors.Is(err, domain.ErrPackageNotFound) ||
		domain.IsValidationError(err) {
		return err
	}
	s.log.ErrorContext(ctx, "deal submit failed", zap.Error(err))
	return fmt.Errorf("%w: %v", domain.ErrCommitFailed, err)
}

// GetByID retrieves a deal by ID
func (s *dealService) GetByID(ctx context.Context, id string) (*dto.DealResponse, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDealResponse(deal, nil), nil
}

// List retrieves deals with pagination and filters
func (s *dealService) List(ctx context.Context, filter *dto.DealListFilter) ([]*dto.DealResponse, int, error) {
	filter.SetDefaults()
	deals, total, err := s.dealRepo.List(ctx, repository.DealListFilter{
		EventID:   filter.EventID,
		SponsorID: filter.SponsorID,
		Status:    filter.Status,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	})
	if err != nil {
		return nil, 0, err
	}
	responses := make([]*dto.DealResponse, 0, len(deals))
	for _, d := range deals {
		responses = append(responses, s.toDealResponse(d, nil))
	}
	return responses, total, nil
}

// Update updates deal terms
func (s *dealService) Update(ctx context.Context, id string, req *dto.UpdateDealRequest) (*dto.DealResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.CashValue != nil {
		deal.CashValue = *req.CashValue
	}
	if req.InKindValue != nil {
		deal.InKindValue = *req.InKindValue
	}
	if req.ContractURL != nil {
		deal.ContractURL = *req.ContractURL
	}
	if req.Level != nil {
		deal.Level = *req.Level
	}
	if err := deal.Validate(); err != nil {
		return nil, err
	}
	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, err
	}
	return s.toDealResponse(deal, nil), nil
}

// UpdateStatus transitions a deal's status. The caller supplies the
// status it last read; a mismatch with the stored row means another
// writer won and the request is rejected as stale.
func (s *dealService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateDealStatusRequest) (*dto.DealResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expected := domain.DealStatus(req.ExpectedStatus)
	requested := domain.DealStatus(req.Status)
	result, err := domain.TransitionDeal(expected, requested, domain.DealTransitionContext{
		ContractURL: deal.ContractURL,
		Reason:      req.Reason,
	})
	if err != nil {
		return nil, err
	}

	if result.NoOp {
		if deal.Status != expected {
			return nil, domain.ErrStaleStatus
		}
		return s.toDealResponse(deal, result.Warnings), nil
	}

	if err := s.dealRepo.UpdateStatus(ctx, id, expected, requested, req.Reason); err != nil {
		return nil, err
	}
	deal.Status = requested
	deal.UpdatedAt = time.Now()

	s.publisher.PublishStatusChanged(ctx, deal, expected, req.Reason)
	s.log.InfoContext(ctx, "deal status changed",
		zap.String("deal_id", deal.ID),
		zap.String("from", string(expected)),
		zap.String("to", string(requested)))

	return s.toDealResponse(deal, result.Warnings), nil
}

func (s *dealService) toDealResponse(deal *domain.Deal, warnings []string) *dto.DealResponse {
	return &dto.DealResponse{
		ID:          deal.ID,
		EventID:     deal.EventID,
		SponsorID:   deal.SponsorID,
		Status:      string(deal.Status),
		Level:       deal.Level,
		CashValue:   deal.CashValue,
		InKindValue: deal.InKindValue,
		TotalValue:  deal.TotalValue(),
		ContractURL: deal.ContractURL,
		Warnings:    warnings,
		CreatedAt:   deal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   deal.UpdatedAt.Format(time.RFC3339),
	}
}
