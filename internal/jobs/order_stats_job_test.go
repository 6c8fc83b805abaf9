package jobs_test

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"orders/internal/adapters/out/memory/orderrepo"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/jobs"
	"orders/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store *orderrepo.MemoryOrderStore, statuses ...order.Status) {
	t.Helper()
	entry, err := order.NewEntry("P1", "Product 1", 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	date, err := kernel.NewDate(2024, time.January, 1)
	require.NoError(t, err)

	for _, s := range statuses {
		o, restoreErr := order.RestoreOrder(store.NextID(), "", date, s, []order.Entry{entry})
		require.NoError(t, restoreErr)
		store.Put(o)
	}
}

func TestOrderStatsJob_Run(t *testing.T) {
	store := orderrepo.NewMemoryOrderStore()
	seed(t, store, order.Created, order.Created, order.Processing, order.Completed)
	m := metrics.New("orders")
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	job := jobs.NewOrderStatsJob(queries.NewListOrdersQueryHandler(store, logger), m, "", logger)

	counts, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"CREATED":    2,
		"PROCESSING": 1,
		"COMPLETED":  1,
		"CANCELLED":  0,
	}, counts)
	assert.InDelta(t, 2, testutil.ToFloat64(m.OrdersByStatus.WithLabelValues("CREATED")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.OrdersByStatus.WithLabelValues("CANCELLED")), 0)
	assert.Contains(t, buf.String(), "total=4")
	assert.Contains(t, buf.String(), "CREATED=2")
	assert.Contains(t, buf.String(), "component=order_stats_job")
}

func TestOrderStatsJob_Run_EmptyStore(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	store := orderrepo.NewMemoryOrderStore()
	job := jobs.NewOrderStatsJob(queries.NewListOrdersQueryHandler(store, logger), nil, "", logger)

	counts, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Len(t, counts, 4)
	for _, n := range counts {
		assert.Zero(t, n)
	}
}

func TestOrderStatsJob_StartStop(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	store := orderrepo.NewMemoryOrderStore()
	seed(t, store, order.Processing)
	m := metrics.New("orders")
	job := jobs.NewOrderStatsJob(queries.NewListOrdersQueryHandler(store, logger), m, "* * * * * *", logger)

	require.NoError(t, job.Start())
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.OrdersByStatus.WithLabelValues("PROCESSING")) == 1
	}, 3*time.Second, 50*time.Millisecond)
	job.Stop()
}

func TestOrderStatsJob_InvalidSchedule(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	store := orderrepo.NewMemoryOrderStore()
	job := jobs.NewOrderStatsJob(queries.NewListOrdersQueryHandler(store, logger), nil, "not a schedule", logger)

	require.Error(t, job.Start())
}

type fakeJob struct {
	mu       sync.Mutex
	name     string
	startErr error
	events   *[]string
}

func (f *fakeJob) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	*f.events = append(*f.events, "start "+f.name)
	return nil
}

func (f *fakeJob) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	*f.events = append(*f.events, "stop "+f.name)
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	var events []string
	jm := jobs.NewJobManagerWithJobs(
		&fakeJob{name: "a", events: &events},
		&fakeJob{name: "b", events: &events},
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
}

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	jm := jobs.NewJobManagerWithJobs(
		&fakeJob{name: "a", events: &events},
		&fakeJob{name: "b", events: &events, startErr: boom},
	)

	err := jm.StartAll()

	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"start a", "stop a"}, events)
}

func TestNewJobManager(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	store := orderrepo.NewMemoryOrderStore()
	jm := jobs.NewJobManager(queries.NewListOrdersQueryHandler(store, logger), metrics.New("orders"), "", logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
