package commands

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
)

type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory[OrderUoW]
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory[OrderUoW]) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Role().Require(kernel.DeleteOrder); err != nil {
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
	if err = o.CheckDeletable(cmd.Actor()); err != nil {
		return err
	}
	if err = deleteOrder(ctx, uow, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
