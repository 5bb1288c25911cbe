package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/service"
	"github.com/runwaydesk/sponsorhub/pkg/response"
)

// EventHandler handles event, ticket tier and production phase HTTP
// requests, plus the per-event opportunity and readiness read models
type EventHandler struct {
	eventService       service.EventService
	opportunityService service.OpportunityService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService, opportunityService service.OpportunityService) *EventHandler {
	return &EventHandler{
		eventService:       eventService,
		opportunityService: opportunityService,
	}
}

// Create handles POST /events - creates an event with its default
// production checklist
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(event))
}

// GetByID handles GET /events/:id - retrieves an event by ID
func (h *EventHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(event))
}

// List handles GET /events - lists events with search and filters
func (h *EventHandler) List(c *gin.Context) {
	var filter dto.EventListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}
	filter.SetDefaults()

	events, total, err := h.eventService.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(events, filter.Offset/filter.Limit+1, filter.Limit, int64(total)))
}

// Update handles PATCH /events/:id - updates an event
func (h *EventHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(event))
}

// CreateTier handles POST /events/:id/tiers - adds a ticket tier
func (h *EventHandler) CreateTier(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.CreateTicketTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	tier, err := h.eventService.CreateTier(c.Request.Context(), eventID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(tier))
}

// ListTiers handles GET /events/:id/tiers - lists an event's ticket tiers
func (h *EventHandler) ListTiers(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	tiers, err := h.eventService.ListTiers(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(tiers))
}

// UpdateTier handles PATCH /events/:id/tiers/:tierId - updates a tier's
// pricing or counts
func (h *EventHandler) UpdateTier(c *gin.Context) {
	eventID := c.Param("id")
	tierID := c.Param("tierId")
	if eventID == "" || tierID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateTicketTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	tier, err := h.eventService.UpdateTier(c.Request.Context(), eventID, tierID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(tier))
}

// ListPhases handles GET /events/:id/phases - lists the production
// checklist in order
func (h *EventHandler) ListPhases(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	phases, err := h.eventService.ListPhases(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(phases))
}

// UpdatePhase handles PATCH /events/:id/phases/:phaseId - moves a
// checklist phase to a new status
func (h *EventHandler) UpdatePhase(c *gin.Context) {
	eventID := c.Param("id")
	phaseID := c.Param("phaseId")
	if eventID == "" || phaseID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	phase, err := h.eventService.UpdatePhase(c.Request.Context(), eventID, phaseID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(phase))
}

// GetOpportunity handles GET /events/:id/opportunity - the sales view
// combining raised value, goal estimate and package inventory
func (h *EventHandler) GetOpportunity(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	opportunity, err := h.opportunityService.GetOpportunity(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(opportunity))
}

// GetReadiness handles GET /events/:id/readiness - the production
// health view built from the checklist and ticket tiers
func (h *EventHandler) GetReadiness(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	readiness, err := h.opportunityService.GetReadiness(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(readiness))
}
