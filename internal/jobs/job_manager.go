package jobs

import (
	"fmt"
	"log/slog"
)

type scheduledJob interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts and stops the background jobs as one unit.
type JobManager struct {
	jobs []scheduledJob
}

func NewJobManager(
	dispatcher NotificationDispatcher,
	relaySchedule string,
	relayBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		jobs: []scheduledJob{
			NewNotificationRelayJob(dispatcher, relaySchedule, relayBatchSize, logger),
		},
	}
}

// StartAll starts the jobs in order. If one fails, the ones already started
// are stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start %s job: %w", job.Name(), err)
		}
	}
	return nil
}

// StopAll stops the jobs in reverse start order and waits for running ticks.
func (jm *JobManager) StopAll() {
	for i := len(jm.jobs) - 1; i >= 0; i-- {
		jm.jobs[i].Stop()
	}
}
