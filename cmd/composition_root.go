package cmd

import (
	"log/slog"
	"time"

	"foodbot/internal/adapters/in/http"
	"foodbot/internal/adapters/out/memory/cartstore"
	"foodbot/internal/adapters/out/postgres"
	"foodbot/internal/adapters/out/postgres/orderrepo"
	"foodbot/internal/core/application/dispatcher"
	"foodbot/internal/core/application/usecases/commands"
	"foodbot/internal/core/application/usecases/queries"
	"foodbot/internal/core/ports"
	"foodbot/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	carts      *cartstore.InMemoryCartStore
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	clock := ports.ClockFunc(time.Now)
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		carts:      cartstore.NewInMemoryCartStore(clock),
		clock:      clock,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateAddToOrderCommandHandler() commands.AddToOrderCommandHandler {
	return commands.NewAddToOrderCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateRemoveFromOrderCommandHandler() commands.RemoveFromOrderCommandHandler {
	return commands.NewRemoveFromOrderCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(c.carts, f, c.logger)
}

func (c *CompositionRoot) CreateExpireIdleCartsCommandHandler() commands.ExpireIdleCartsCommandHandler {
	return commands.NewExpireIdleCartsCommandHandler(c.carts, c.clock)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

func (c *CompositionRoot) CreateDispatcher() (*dispatcher.Dispatcher, error) {
	hours, err := c.config.BusinessHours()
	if err != nil {
		return nil, err
	}

	add := c.CreateAddToOrderCommandHandler()
	remove := c.CreateRemoveFromOrderCommandHandler()
	complete := c.CreateCompleteOrderCommandHandler()

	return dispatcher.NewDispatcher(hours, c.clock, dispatcher.Handlers{
		AddToOrder:      &add,
		RemoveFromOrder: &remove,
		CompleteOrder:   &complete,
		TrackOrder:      c.CreateTrackOrderQueryHandler(),
	}, c.logger), nil
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	d, err := c.CreateDispatcher()
	if err != nil {
		return nil, err
	}
	return http.NewRouter(http.NewServer(d, c.logger), c.logger)
}

// CreateJobManager returns the background jobs enabled by configuration.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	ttl, err := c.config.IdleTTL()
	if err != nil {
		return nil, err
	}
	if ttl == 0 {
		return jobs.NewJobManager(), nil
	}

	interval, err := c.config.SweepInterval()
	if err != nil {
		return nil, err
	}

	expire := c.CreateExpireIdleCartsCommandHandler()
	expiry, err := jobs.NewCartExpiryJob(&expire, ttl, interval, c.logger)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(expiry), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
