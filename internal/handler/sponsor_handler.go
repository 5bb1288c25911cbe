package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/service"
	"github.com/runwaydesk/sponsorhub/pkg/response"
)

// SponsorHandler handles sponsor directory HTTP requests
type SponsorHandler struct {
	sponsorService service.SponsorService
}

// NewSponsorHandler creates a new SponsorHandler
func NewSponsorHandler(sponsorService service.SponsorService) *SponsorHandler {
	return &SponsorHandler{sponsorService: sponsorService}
}

// Create handles POST /sponsors - adds a sponsor to the directory
func (h *SponsorHandler) Create(c *gin.Context) {
	var req dto.CreateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	sponsor, err := h.sponsorService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(sponsor))
}

// GetByID handles GET /sponsors/:id - retrieves a sponsor by ID
func (h *SponsorHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	sponsor, err := h.sponsorService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(sponsor))
}

// List handles GET /sponsors - lists sponsors with search and filters
func (h *SponsorHandler) List(c *gin.Context) {
	var filter dto.SponsorListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}
	filter.SetDefaults()

	sponsors, total, err := h.sponsorService.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(sponsors, filter.Offset/filter.Limit+1, filter.Limit, int64(total)))
}

// Update handles PATCH /sponsors/:id - updates a sponsor profile
func (h *SponsorHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdateSponsorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	sponsor, err := h.sponsorService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(sponsor))
}

// Archive handles DELETE /sponsors/:id - archives a sponsor. History
// stays queryable; the sponsor just stops appearing in default lists.
func (h *SponsorHandler) Archive(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	if err := h.sponsorService.Archive(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Sponsor archived successfully"}))
}
