package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/service"
	"github.com/runwaydesk/sponsorhub/pkg/response"
	"github.com/runwaydesk/sponsorhub/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// WizardHandler handles deal wizard draft HTTP requests
type WizardHandler struct {
	wizardService service.WizardService
}

// NewWizardHandler creates a new WizardHandler
func NewWizardHandler(wizardService service.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// CreateDraft handles POST /deals/drafts - opens a draft at the
// qualification step
func (h *WizardHandler) CreateDraft(c *gin.Context) {
	var req dto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	draft, err := h.wizardService.CreateDraft(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(draft))
}

// GetDraft handles GET /deals/drafts/:id - retrieves a draft
func (h *WizardHandler) GetDraft(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	draft, err := h.wizardService.GetDraft(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(draft))
}

// UpdateStep handles PATCH /deals/drafts/:id - stages fields on the
// current step and applies next/back/stay navigation
func (h *WizardHandler) UpdateStep(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateDraftStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	draft, err := h.wizardService.UpdateStep(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(draft))
}

// SubmitDraft handles POST /deals/drafts/:id/submit - the final commit
// of the wizard. A failed submit leaves the draft intact for a retry.
func (h *WizardHandler) SubmitDraft(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.wizard.submit")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id := c.Param("id")
	if id == "" {
		span.SetStatus(codes.Error, "id required")
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}
	span.SetAttributes(attribute.String("draft_id", id))

	// The body is optional; most callers rely on the draft ID as the
	// idempotency key
	var req dto.SubmitDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid request")
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
			return
		}
	}

	deal, err := h.wizardService.SubmitDraft(ctx, id, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		respondError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusCreated, response.Success(deal))
}
