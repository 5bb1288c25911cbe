package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/repository"
	"github.com/runwaydesk/sponsorhub/pkg/logger"
	"go.uber.org/zap"
)

// WizardService defines the interface for the staged deal wizard
type WizardService interface {
	// CreateDraft opens a new draft at the qualification step
	CreateDraft(ctx context.Context, req *dto.CreateDraftRequest) (*dto.DraftResponse, error)
	// GetDraft retrieves a draft by ID
	GetDraft(ctx context.Context, id string) (*dto.DraftResponse, error)
	// UpdateStep stages fields on the draft and applies next/back/stay
	// navigation. Advancing re-runs the current step's gate.
	UpdateStep(ctx context.Context, id string, req *dto.UpdateDraftStepRequest) (*dto.DraftResponse, error)
	// SubmitDraft re-validates the hard gates and performs the atomic
	// submit. The draft survives a failed submit and is deleted after a
	// successful one.
	SubmitDraft(ctx context.Context, id string, req *dto.SubmitDraftRequest) (*dto.DealResponse, error)
}

// wizardService implements WizardService
type wizardService struct {
	draftRepo repository.DraftRepository
	deals     DealService
	log       *logger.Logger
}

// NewWizardService creates a new WizardService
func NewWizardService(draftRepo repository.DraftRepository, deals DealService, log *logger.Logger) WizardService {
	return &wizardService{draftRepo: draftRepo, deals: deals, log: log}
}

// CreateDraft opens a new draft at the qualification step
func (s *wizardService) CreateDraft(ctx context.Context, req *dto.CreateDraftRequest) (*dto.DraftResponse, error) {
	now := time.Now()
	draft := &domain.DealDraft{
		ID:        uuid.New().String(),
		Step:      domain.StepQualification,
		EventID:   req.EventID,
		SponsorID: req.SponsorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.draftRepo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.toDraftResponse(draft, false), nil
}

// GetDraft retrieves a draft by ID
func (s *wizardService) GetDraft(ctx context.Context, id string) (*dto.DraftResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDraftResponse(draft, false), nil
}

// UpdateStep stages fields on the draft and applies navigation
func (s *wizardService) UpdateStep(ctx context.Context, id string, req *dto.UpdateDraftStepRequest) (*dto.DraftResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, domain.NewValidationError("request", msg)
	}

	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.stage(draft, req)

	exited := false
	switch req.Action {
	case "next":
		// Advancing requires the current step's gate to pass
		if err := draft.GateError(draft.Step); err != nil {
			return nil, err
		}
		steps := domain.WizardSteps()
		if idx := domain.StepIndex(draft.Step); idx < len(steps)-1 {
			draft.Step = steps[idx+1]
		}
	case "back":
		// Backing out of the first step exits the wizard; the draft is
		// kept so the caller can resume it.
		if idx := domain.StepIndex(draft.Step); idx == 0 {
			exited = true
		} else {
			draft.Step = domain.WizardSteps()[idx-1]
		}
	}

	draft.UpdatedAt = time.Now()
	if err := s.draftRepo.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.toDraftResponse(draft, exited), nil
}

// stage copies the provided fields onto the draft
func (s *wizardService) stage(draft *domain.DealDraft, req *dto.UpdateDraftStepRequest) {
	if req.EventID != nil {
		draft.EventID = *req.EventID
	}
	if req.SponsorID != nil {
		draft.SponsorID = *req.SponsorID
	}
	if req.PackageID != nil {
		draft.PackageID = *req.PackageID
	}
	if req.CashValue != nil {
		draft.CashValue = *req.CashValue
	}
	if req.InKindValue != nil {
		draft.InKindValue = *req.InKindValue
	}
	if req.ContractURL != nil {
		draft.ContractURL = *req.ContractURL
	}
	if req.ContractSigned != nil {
		draft.ContractSigned = *req.ContractSigned
	}
	if req.GoalNotes != nil {
		draft.GoalNotes = *req.GoalNotes
	}
	if req.Activations != nil {
		staged := make([]domain.StagedActivation, 0, len(req.Activations))
		for _, a := range req.Activations {
			staged = append(staged, domain.StagedActivation{
				Title:       a.Title,
				Type:        a.Type,
				Location:    a.Location,
				Description: a.Description,
			})
		}
		draft.Activations = staged
	}
}

// SubmitDraft re-validates the hard gates and performs the atomic submit
func (s *wizardService) SubmitDraft(ctx context.Context, id string, req *dto.SubmitDraftRequest) (*dto.DealResponse, error) {
	draft, err := s.draftRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := draft.GateError(domain.StepReview); err != nil {
		return nil, err
	}

	// The draft ID doubles as the idempotency key when the caller does
	// not supply one, so a retried submit cannot double-commit.
	key := req.IdempotencyKey
	if key == "" {
		key = draft.ID
	}

	activations := make([]dto.ActivationInput, 0, len(draft.Activations))
	for _, a := range draft.Activations {
		activations = append(activations, dto.ActivationInput{
			Title:       a.Title,
			Type:        a.Type,
			Location:    a.Location,
			Description: a.Description,
		})
	}

	deal, err := s.deals.Submit(ctx, &dto.SubmitDealRequest{
		EventID:        draft.EventID,
		SponsorID:      draft.SponsorID,
		PackageID:      draft.PackageID,
		CashValue:      draft.CashValue,
		InKindValue:    draft.InKindValue,
		ContractURL:    draft.ContractURL,
		ContractSigned: draft.ContractSigned,
		Activations:    activations,
		IdempotencyKey: key,
	})
	if err != nil {
		// The draft stays intact so the caller can retry without
		// re-entering anything
		return nil, err
	}

	if err := s.draftRepo.Delete(ctx, draft.ID); err != nil {
		s.log.WarnContext(ctx, "failed to delete committed draft",
			zap.String("draft_id", draft.ID), zap.Error(err))
	}
	return deal, nil
}

func (s *wizardService) toDraftResponse(draft *domain.DealDraft, exited bool) *dto.DraftResponse {
	activations := make([]dto.ActivationInput, 0, len(draft.Activations))
	for _, a := range draft.Activations {
		activations = append(activations, dto.ActivationInput{
			Title:       a.Title,
			Type:        a.Type,
			Location:    a.Location,
			Description: a.Description,
		})
	}
	return &dto.DraftResponse{
		ID:             draft.ID,
		Step:           string(draft.Step),
		StepIndex:      domain.StepIndex(draft.Step),
		TotalSteps:     len(domain.WizardSteps()),
		Exited:         exited,
		EventID:        draft.EventID,
		SponsorID:      draft.SponsorID,
		PackageID:      draft.PackageID,
		CashValue:      draft.CashValue,
		InKindValue:    draft.InKindValue,
		ContractURL:    draft.ContractURL,
		ContractSigned: draft.ContractSigned,
		GoalNotes:      draft.GoalNotes,
		Activations:    activations,
		CreatedAt:      draft.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      draft.UpdatedAt.Format(time.RFC3339),
	}
}
