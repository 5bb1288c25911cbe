package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/dto"
	"github.com/runwaydesk/sponsorhub/internal/service"
	"github.com/runwaydesk/sponsorhub/pkg/response"
)

// PackageHandler handles sponsorship package catalog HTTP requests
type PackageHandler struct {
	packageService service.PackageService
}

// NewPackageHandler creates a new PackageHandler
func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// Create handles POST /packages - adds a package to the catalog
func (h *PackageHandler) Create(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	pkg, err := h.packageService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(pkg))
}

// GetByID handles GET /packages/:id - retrieves a package by ID
func (h *PackageHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	pkg, err := h.packageService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(pkg))
}

// List handles GET /packages - lists the package catalog
func (h *PackageHandler) List(c *gin.Context) {
	packages, err := h.packageService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(packages))
}

// Update handles PATCH /packages/:id - updates a catalog package
func (h *PackageHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	pkg, err := h.packageService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(pkg))
}

// GetAvailability handles GET /packages/:id/availability - returns the
// live slot count and label for a package at one event
func (h *PackageHandler) GetAvailability(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("ID is required"))
		return
	}
	eventID := c.Query("event_id")
	if eventID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("event_id query parameter is required"))
		return
	}

	availability, err := h.packageService.GetAvailability(c.Request.Context(), id, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(availability))
}
