package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"clinicmeals/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatcher relays one batch of the outbox.
type NotificationDispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchNotificationsCommand) (int, error)
}

// NotificationRelayJob publishes pending notifications on a schedule.
type NotificationRelayJob struct {
	dispatcher NotificationDispatcher
	schedule   string
	batchSize  int
	cron       *cron.Cron
	logger     *slog.Logger

	// running guards against overlapping runs when a batch outlasts the tick.
	running sync.Mutex
}

func NewNotificationRelayJob(
	dispatcher NotificationDispatcher,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		dispatcher: dispatcher,
		schedule:   schedule,
		batchSize:  batchSize,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "notification_relay_job"),
	}
}

func (j *NotificationRelayJob) Name() string { return "notification relay" }

// Start validates the batch size and schedule, then starts the cron.
func (j *NotificationRelayJob) Start() error {
	if _, err := commands.NewDispatchNotificationsCommand(j.batchSize); err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce relays a single batch. A run that finds the previous one still in
// progress returns immediately.
func (j *NotificationRelayJob) RunOnce(ctx context.Context) {
	if !j.running.TryLock() {
		return
	}
	defer j.running.Unlock()

	cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay misconfigured", "error", err)
		return
	}
	dispatched, err := j.dispatcher.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification relay failed", "error", err)
		return
	}
	if dispatched > 0 {
		j.logger.InfoContext(ctx, "Notifications dispatched", "count", dispatched)
	}
}

// Stop stops scheduling and waits for a running relay to finish.
func (j *NotificationRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}
