package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule runs the stats report every 30 seconds.
const DefaultStatsSchedule = "*/30 * * * * *"

// OrderStatsJob periodically reports how many orders sit in each status.
// Counts go to the log and to the orders_by_status gauge.
type OrderStatsJob struct {
	handler  queries.ListOrdersQueryHandler
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob creates a new stats job. schedule is a cron expression with a
// leading seconds field; an empty schedule means DefaultStatsSchedule.
func NewOrderStatsJob(
	handler queries.ListOrdersQueryHandler,
	m *metrics.Metrics,
	schedule string,
	logger *slog.Logger,
) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &OrderStatsJob{
		handler:  handler,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_stats_job"),
	}
}

// Start schedules the report.
func (j *OrderStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.logger.Error("Order stats job failed", "error", err)
		}
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order stats job stopped")
}

// Run takes one snapshot and reports it. It returns the counts per status name.
func (j *OrderStatsJob) Run(ctx context.Context) (map[string]int, error) {
	orders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return nil, err
	}

	statuses := order.Statuses()
	known := make([]string, len(statuses))
	counts := make(map[string]int, len(statuses))
	for i, s := range statuses {
		known[i] = s.String()
		counts[s.String()] = 0
	}
	for _, o := range orders {
		counts[o.Status().String()]++
	}

	attrs := make([]any, 0, 2*len(known)+2)
	attrs = append(attrs, "total", len(orders))
	for _, name := range known {
		attrs = append(attrs, name, counts[name])
	}
	j.logger.InfoContext(ctx, "Order stats", attrs...)

	if j.metrics != nil {
		j.metrics.SetOrdersByStatus(counts, known)
	}

	return counts, nil
}
