package commands

import (
	"context"
)

type MarkNotificationReadCommandHandler struct {
	uowFactory UoWFactory[NotificationUoW]
}

func NewMarkNotificationReadCommandHandler(uowFactory UoWFactory[NotificationUoW]) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	repo := uow.NotificationRepository()
	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}
	if err = n.MarkRead(cmd.Actor()); err != nil {
		return err
	}
	if err = repo.MarkRead(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
