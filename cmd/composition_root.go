package cmd

import (
	"context"
	"log/slog"

	apihttp "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/pkg/clock"
	"orders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CompositionRoot struct {
	config  Config
	logger  *slog.Logger
	store   ports.OrderStore
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:  config,
		logger:  logger,
		store:   orderrepo.NewMemoryOrderStore(),
		clock:   clock.System{},
		metrics: metrics.New("orders"),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateServer() *apihttp.Server {
	return apihttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	return apihttp.NewRouter(ctx, c.CreateServer(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListOrdersQueryHandler(), c.metrics, c.config.StatsReportSchedule, c.logger)
}

type sampleEntry struct {
	code     string
	name     string
	quantity int
	price    string
}

var sampleOrders = []struct {
	description string
	entries     []sampleEntry
}{
	{
		description: "Sample Order 1",
		entries: []sampleEntry{
			{code: "P1", name: "Product 1", quantity: 2, price: "50.0"},
			{code: "P2", name: "Product 2", quantity: 1, price: "75.0"},
		},
	},
	{
		description: "Sample Order 2",
		entries: []sampleEntry{
			{code: "P3", name: "Product 3", quantity: 3, price: "20.0"},
		},
	},
}

// SeedSampleOrders creates the demo orders through the regular create path.
func (c *CompositionRoot) SeedSampleOrders(ctx context.Context) error {
	handler := c.CreateCreateOrderCommandHandler()

	for _, sample := range sampleOrders {
		entries := make([]order.Entry, 0, len(sample.entries))
		for _, e := range sample.entries {
			entry, err := order.NewEntry(e.code, e.name, e.quantity, decimal.RequireFromString(e.price))
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}

		cmd, err := commands.NewCreateOrderCommand(sample.description, kernel.Date{}, entries)
		if err != nil {
			return err
		}
		if _, err = handler.Handle(ctx, cmd); err != nil {
			return err
		}
	}

	c.logger.InfoContext(ctx, "Sample orders created", "count", len(sampleOrders))
	return nil
}
