package router

import (
	"github.com/gin-gonic/gin"
	"github.com/runwaydesk/sponsorhub/internal/di"
	"github.com/runwaydesk/sponsorhub/pkg/middleware"
)

// New builds the gin engine with all routes and middleware wired
func New(c *di.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(c.Logger))
	r.Use(middleware.HTTPMetrics())

	// Health endpoints stay outside authentication so probes work
	health := r.Group("/health")
	{
		health.GET("/live", c.HealthHandler.Live)
		health.GET("/ready", c.HealthHandler.Ready)
	}

	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTMiddleware(&middleware.JWTConfig{
		Secret: c.Config.JWT.Secret,
	}))
	{
		sponsors := v1.Group("/sponsors")
		{
			sponsors.POST("", c.SponsorHandler.Create)
			sponsors.GET("", c.SponsorHandler.List)
			sponsors.GET("/:id", c.SponsorHandler.GetByID)
			sponsors.PATCH("/:id", c.SponsorHandler.Update)
			sponsors.DELETE("/:id", c.SponsorHandler.Archive)
		}

		packages := v1.Group("/packages")
		{
			packages.POST("", c.PackageHandler.Create)
			packages.GET("", c.PackageHandler.List)
			packages.GET("/:id", c.PackageHandler.GetByID)
			packages.PATCH("/:id", c.PackageHandler.Update)
			packages.GET("/:id/availability", c.PackageHandler.GetAvailability)
		}

		events := v1.Group("/events")
		{
			events.POST("", c.EventHandler.Create)
			events.GET("", c.EventHandler.List)
			events.GET("/:id", c.EventHandler.GetByID)
			events.PATCH("/:id", c.EventHandler.Update)

			events.POST("/:id/tiers", c.EventHandler.CreateTier)
			events.GET("/:id/tiers", c.EventHandler.ListTiers)
			events.PATCH("/:id/tiers/:tierId", c.EventHandler.UpdateTier)

			events.GET("/:id/phases", c.EventHandler.ListPhases)
			events.PATCH("/:id/phases/:phaseId", c.EventHandler.UpdatePhase)

			events.GET("/:id/opportunity", c.EventHandler.GetOpportunity)
			events.GET("/:id/readiness", c.EventHandler.GetReadiness)
		}

		deals := v1.Group("/deals")
		{
			deals.POST("/drafts", c.WizardHandler.CreateDraft)
			deals.GET("/drafts/:id", c.WizardHandler.GetDraft)
			deals.PATCH("/drafts/:id", c.WizardHandler.UpdateStep)
			deals.POST("/drafts/:id/submit", c.WizardHandler.SubmitDraft)

			deals.POST("", c.DealHandler.Submit)
			deals.GET("", c.DealHandler.List)
			deals.GET("/:id", c.DealHandler.GetByID)
			deals.PATCH("/:id", c.DealHandler.Update)
			deals.PATCH("/:id/status", c.DealHandler.UpdateStatus)

			deals.POST("/:id/activations", c.DealHandler.CreateActivation)
			deals.GET("/:id/activations", c.DealHandler.ListActivations)
			deals.POST("/:id/deliverables", c.DealHandler.CreateDeliverable)
			deals.GET("/:id/deliverables", c.DealHandler.ListDeliverables)
		}

		v1.PATCH("/activations/:id/status", c.ActivationHandler.UpdateStatus)
		v1.POST("/deliverables/:id/upload", c.DeliverableHandler.Upload)
		v1.POST("/deliverables/:id/review", c.DeliverableHandler.Review)
	}

	return r
}
