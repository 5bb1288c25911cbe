package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/service"
	"github.com/runwaydesk/sponsorhub/pkg/response"
)

// ActivationHandler handles activation HTTP requests addressed by
// activation ID
type ActivationHandler struct {
	activationService service.ActivationService
}

// NewActivationHandler creates a new ActivationHandler
func NewActivationHandler(activationService service.ActivationService) *ActivationHandler {
	return &ActivationHandler{activationService: activationService}
}

// UpdateStatus handles PATCH /activations/:id/status - moves an
// activation one step along its pipeline, or further with force
func (h *ActivationHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateActivationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	activation, err := h.activationService.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(activation))
}
