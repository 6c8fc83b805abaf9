package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/metrics"
)

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs []Job
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	listOrdersHandler queries.ListOrdersQueryHandler,
	m *metrics.Metrics,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return NewJobManagerWithJobs(
		NewOrderStatsJob(listOrdersHandler, m, statsSchedule, logger),
	)
}

// NewJobManagerWithJobs creates a manager over an explicit set of jobs.
func NewJobManagerWithJobs(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			// Stop already started jobs if this one fails
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
