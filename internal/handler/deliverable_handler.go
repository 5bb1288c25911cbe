package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/service"
	"github.com/runwaydesk/sponsorhub/pkg/response"
)

// DeliverableHandler handles deliverable HTTP requests addressed by
// deliverable ID
type DeliverableHandler struct {
	deliverableService service.DeliverableService
}

// NewDeliverableHandler creates a new DeliverableHandler
func NewDeliverableHandler(deliverableService service.DeliverableService) *DeliverableHandler {
	return &DeliverableHandler{deliverableService: deliverableService}
}

// Upload handles POST /deliverables/:id/upload - records the stored
// asset URL and moves the deliverable to uploaded
func (h *DeliverableHandler) Upload(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UploadDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	deliverable, err := h.deliverableService.Upload(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(deliverable))
}

// Review handles POST /deliverables/:id/review - approves or rejects
// an uploaded deliverable. A rejection reopens it for re-upload.
func (h *DeliverableHandler) Review(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.ReviewDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	deliverable, err := h.deliverableService.Review(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(deliverable))
}
