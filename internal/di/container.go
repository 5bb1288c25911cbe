package di

import (
	"github.com/runwaydesk/sponsorhub/internal/handler"
	"github.com/runwaydesk/sponsorhub/internal/repository"
	"github.com/runwaydesk/sponsorhub/internal/service"
	"github.com/runwaydesk/sponsorhub/pkg/config"
	"github.com/runwaydesk/sponsorhub/pkg/database"
	"github.com/runwaydesk/sponsorhub/pkg/kafka"
	"github.com/runwaydesk/sponsorhub/pkg/logger"
	"github.com/runwaydesk/sponsorhub/pkg/redis"
)

// Container holds all dependencies for the sponsorship engine
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *redis.Client
	Logger *logger.Logger

	// Repositories
	SponsorRepo     repository.SponsorRepository
	PackageRepo     repository.PackageRepository
	EventRepo       repository.EventRepository
	DealRepo        repository.DealRepository
	ActivationRepo  repository.ActivationRepository
	DeliverableRepo repository.DeliverableRepository
	DraftRepo       repository.DraftRepository

	// Services
	SponsorService     service.SponsorService
	PackageService     service.PackageService
	EventService       service.EventService
	DealService        service.DealService
	WizardService      service.WizardService
	ActivationService  service.ActivationService
	DeliverableService service.DeliverableService
	OpportunityService service.OpportunityService

	// Handlers
	HealthHandler      *handler.HealthHandler
	SponsorHandler     *handler.SponsorHandler
	PackageHandler     *handler.PackageHandler
	EventHandler       *handler.EventHandler
	DealHandler        *handler.DealHandler
	WizardHandler      *handler.WizardHandler
	ActivationHandler  *handler.ActivationHandler
	DeliverableHandler *handler.DeliverableHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Redis    *redis.Client
	Producer *kafka.Producer // nil when the event feed is disabled
	Logger   *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		Config: cfg.Config,
		DB:     cfg.DB,
		Redis:  cfg.Redis,
		Logger: cfg.Logger,
	}

	// Repositories
	c.SponsorRepo = repository.NewPostgresSponsorRepository(c.DB)
	c.PackageRepo = repository.NewPostgresPackageRepository(c.DB)
	c.EventRepo = repository.NewPostgresEventRepository(c.DB)
	c.DealRepo = repository.NewPostgresDealRepository(c.DB)
	c.ActivationRepo = repository.NewPostgresActivationRepository(c.DB)
	c.DeliverableRepo = repository.NewPostgresDeliverableRepository(c.DB)
	c.DraftRepo = repository.NewRedisDraftRepository(c.Redis, cfg.Config.Draft.TTL)

	// Shared domain helpers
	ledger := service.NewInventoryLedger(cfg.Config.Inventory.ReservingStatuses, cfg.Config.Inventory.DefaultSlots)
	readiness := service.NewReadinessAggregator()

	var publisher service.DealEventPublisher = service.NoopDealEventPublisher{}
	if cfg.Producer != nil {
		publisher = service.NewKafkaDealEventPublisher(cfg.Producer, c.Logger)
	}

	// Services
	c.SponsorService = service.NewSponsorService(c.SponsorRepo)
	c.PackageService = service.NewPackageService(c.PackageRepo, c.DealRepo, ledger)
	c.EventService = service.NewEventService(c.EventRepo)
	c.DealService = service.NewDealService(
		c.DealRepo,
		c.ActivationRepo,
		c.DeliverableRepo,
		c.PackageRepo,
		c.SponsorRepo,
		c.EventRepo,
		ledger,
		cfg.Config.Inventory.Policy,
		publisher,
		c.Logger,
	)
	c.WizardService = service.NewWizardService(c.DraftRepo, c.DealService, c.Logger)
	c.ActivationService = service.NewActivationService(c.ActivationRepo, c.DealRepo)
	c.DeliverableService = service.NewDeliverableService(c.DeliverableRepo, c.DealRepo)
	c.OpportunityService = service.NewOpportunityService(c.EventRepo, c.DealRepo, c.PackageRepo, ledger, readiness)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.SponsorHandler = handler.NewSponsorHandler(c.SponsorService)
	c.PackageHandler = handler.NewPackageHandler(c.PackageService)
	c.EventHandler = handler.NewEventHandler(c.EventService, c.OpportunityService)
	c.DealHandler = handler.NewDealHandler(c.DealService, c.ActivationService, c.DeliverableService)
	c.WizardHandler = handler.NewWizardHandler(c.WizardService)
	c.ActivationHandler = handler.NewActivationHandler(c.ActivationService)
	c.DeliverableHandler = handler.NewDeliverableHandler(c.DeliverableService)

	return c
}
