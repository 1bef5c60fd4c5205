package commands

import (
	"context"
	"log/slog"
	"time"

	"clinicmeals/internal/core/domain/model/notification"
	"clinicmeals/internal/core/ports"
	"clinicmeals/internal/pkg/errs"
)

// DispatchNotificationsCommandHandler publishes the notifications that are
// due and marks those the sink accepted. A rejected notification is retried
// later with a growing delay, so it cannot hold back the rest of the outbox;
// after notification.MaxDispatchAttempts it is parked.
type DispatchNotificationsCommandHandler struct {
	uowFactory UoWFactory[NotificationUoW]
	publisher  ports.NotificationPublisher
	logger     *slog.Logger
}

func NewDispatchNotificationsCommandHandler(
	uowFactory UoWFactory[NotificationUoW],
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "notification_dispatch"),
	}
}

// Handle returns how many notifications were dispatched.
func (h *DispatchNotificationsCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now().UTC()
	repo := uow.NotificationRepository()
	pending, err := repo.ListUndispatched(ctx, now, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, n := range pending {
		msg := ports.NotificationMessage{
			ID:          n.ID().String(),
			RecipientID: n.RecipientID().String(),
			OrderID:     n.OrderID().String(),
			Message:     n.Message(),
			CreatedAt:   n.CreatedAt(),
		}
		if pubErr := h.publisher.Publish(ctx, msg); pubErr != nil {
			h.recordFailure(ctx, n, now, errs.NewNotificationError(msg.RecipientID, pubErr))
			if err = repo.RecordDispatchFailure(ctx, n); err != nil {
				return 0, err
			}
			continue
		}

		n.MarkDispatched(now)
		if err = repo.MarkDispatched(ctx, n); err != nil {
			return 0, err
		}
		dispatched++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return dispatched, nil
}

func (h *DispatchNotificationsCommandHandler) recordFailure(
	ctx context.Context,
	n *notification.Notification,
	now time.Time,
	cause error,
) {
	if n.RecordDispatchFailure(now) {
		h.logger.ErrorContext(ctx, "notification parked after repeated publish failures",
			"notification_id", n.ID().String(),
			"attempts", n.Dispatch().Attempts,
			"error", cause,
		)
		return
	}
	h.logger.WarnContext(ctx, "notification publish failed, will retry",
		"notification_id", n.ID().String(),
		"attempts", n.Dispatch().Attempts,
		"next_attempt_at", n.Dispatch().NextAttemptAt,
		"error", cause,
	)
}
