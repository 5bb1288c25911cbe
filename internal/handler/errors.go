package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/domain"
	"github.com/runwaydesk/sponsorhub/pkg/response"
)

// respondError maps a service error to the API error taxonomy. Every
// handler funnels its failures through here so status codes stay
// consistent across resources.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, response.ValidationFailed(map[string]string{ve.Field: ve.Reason}))
		return
	}

	switch {
	case errors.Is(err, domain.ErrSponsorNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Sponsor not found"))
	case errors.Is(err, domain.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Package not found"))
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Event not found"))
	case errors.Is(err, domain.ErrDealNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Deal not found"))
	case errors.Is(err, domain.ErrActivationNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Activation not found"))
	case errors.Is(err, domain.ErrDeliverableNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Deliverable not found"))
	case errors.Is(err, domain.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Draft not found"))
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, response.InvalidTransition(err.Error()))
	case errors.Is(err, domain.ErrStaleStatus):
		c.JSON(http.StatusConflict, response.StaleStatus(""))
	case errors.Is(err, domain.ErrInventoryExhausted):
		c.JSON(http.StatusConflict, response.InventoryExhausted(""))
	case errors.Is(err, domain.ErrDuplicateSubmit):
		c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "This submission was already committed"))
	case errors.Is(err, domain.ErrCommitFailed):
		c.JSON(http.StatusInternalServerError, response.CommitFailed(""))
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, response.UpstreamUnavailable(""))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
	}
}
