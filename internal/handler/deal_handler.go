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

// DealHandler handles deal lifecycle HTTP requests
type DealHandler struct {
	dealService        service.DealService
	activationService  service.ActivationService
	deliverableService service.DeliverableService
}

// NewDealHandler creates a new DealHandler
func NewDealHandler(
	dealService service.DealService,
	activationService service.ActivationService,
	deliverableService service.DeliverableService,
) *DealHandler {
	return &DealHandler{
		dealService:        dealService,
		activationService:  activationService,
		deliverableService: deliverableService,
	}
}

// Submit handles POST /deals - the atomic submit of a completed deal.
// The deal, its activations and its templated deliverables commit
// together or not at all.
func (h *DealHandler) Submit(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.deal.submit")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	var req dto.SubmitDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	span.SetAttributes(
		attribute.String("event_id", req.EventID),
		attribute.String("sponsor_id", req.SponsorID),
		attribute.String("package_id", req.PackageID),
	)

	deal, err := h.dealService.Submit(ctx, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		respondError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusCreated, response.Success(deal))
}

// GetByID handles GET /deals/:id - retrieves a deal by ID
func (h *DealHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	deal, err := h.dealService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(deal))
}

// List handles GET /deals - lists deals with pagination and filters
func (h *DealHandler) List(c *gin.Context) {
	var filter dto.DealListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}
	filter.SetDefaults()

	deals, total, err := h.dealService.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(deals, filter.Offset/filter.Limit+1, filter.Limit, int64(total)))
}

// Update handles PATCH /deals/:id - updates deal terms
func (h *DealHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	deal, err := h.dealService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(deal))
}

// UpdateStatus handles PATCH /deals/:id/status - transitions the deal
// through the pipeline. The caller echoes the status it last read so a
// concurrent change is detected instead of silently overwritten.
func (h *DealHandler) UpdateStatus(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.deal.update_status")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id := c.Param("id")
	if id == "" {
		span.SetStatus(codes.Error, "id required")
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateDealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	span.SetAttributes(
		attribute.String("deal_id", id),
		attribute.String("from", req.ExpectedStatus),
		attribute.String("to", req.Status),
	)

	deal, err := h.dealService.UpdateStatus(ctx, id, &req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		respondError(c, err)
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.Success(deal))
}

// CreateActivation handles POST /deals/:id/activations - adds an
// activation to an existing deal
func (h *DealHandler) CreateActivation(c *gin.Context) {
	dealID := c.Param("id")
	if dealID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.CreateActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	activation, err := h.activationService.Create(c.Request.Context(), dealID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(activation))
}

// ListActivations handles GET /deals/:id/activations
func (h *DealHandler) ListActivations(c *gin.Context) {
	dealID := c.Param("id")
	if dealID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	activations, err := h.activationService.ListByDeal(c.Request.Context(), dealID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(activations))
}

// CreateDeliverable handles POST /deals/:id/deliverables
func (h *DealHandler) CreateDeliverable(c *gin.Context) {
	dealID := c.Param("id")
	if dealID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.CreateDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	deliverable, err := h.deliverableService.Create(c.Request.Context(), dealID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(deliverable))
}

// ListDeliverables handles GET /deals/:id/deliverables
func (h *DealHandler) ListDeliverables(c *gin.Context) {
	dealID := c.Param("id")
	if dealID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	deliverables, err := h.deliverableService.ListByDeal(c.Request.Context(), dealID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(deliverables))
}
