package commands

import (
	"context"
	"log/slog"
	"time"

	"clinicmeals/internal/core/domain/model/notification"
	"clinicmeals/internal/core/domain/model/order"
)

// NotificationEmitter composes the notification of a status change, or nil
// when the new status does not notify.
type NotificationEmitter interface {
	Emit(o order.Order, now time.Time) (*notification.Notification, error)
}

// ChangeOrderStatusCommandHandler applies a transition and, in the same
// transaction, writes the notification it triggers to the outbox. A
// notification that cannot be composed is logged and skipped; the transition
// still commits.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory[OrderUoW]
	emitter    NotificationEmitter
	logger     *slog.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory[OrderUoW],
	emitter NotificationEmitter,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
		logger:     logger.With("component", "change_order_status"),
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := loadOrder(ctx, uow, cmd.Kind(), cmd.OrderID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = o.ChangeStatus(cmd.Status(), cmd.Actor(), now); err != nil {
		return err
	}
	if err = saveOrder(ctx, uow, o); err != nil {
		return err
	}

	n, emitErr := h.emitter.Emit(o, now)
	switch {
	case emitErr != nil:
		h.logger.ErrorContext(ctx, "notification not issued",
			"order_id", o.ID().String(),
			"kind", o.Kind().String(),
			"status", o.Status().String(),
			"error", emitErr,
		)
	case n != nil:
		if err = uow.NotificationRepository().Add(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
