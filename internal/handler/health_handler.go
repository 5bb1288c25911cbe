package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/pkg/database"
	"github.com/runwaydesk/sponsorhub/pkg/redis"
	"github.com/runwaydesk/sponsorhub/pkg/response"
)

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db    *database.PostgresDB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, redis *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Live handles GET /health/live - process liveness
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(map[string]string{"status": "ok"}))
}

// Ready handles GET /health/ready - dependency readiness. The draft
// store being down degrades the wizard but the deal tables stay
// authoritative, so both checks gate readiness.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()

	checks := map[string]string{
		"postgres": "ok",
		"redis":    "ok",
	}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	}
	if err := h.redis.Ping(ctx); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.ErrorWithDetails(response.ErrCodeUpstreamUnavailable, "Dependencies unavailable", checks))
		return
	}

	c.JSON(http.StatusOK, response.Success(checks))
}
