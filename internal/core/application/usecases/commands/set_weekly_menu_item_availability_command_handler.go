package commands

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
)

type SetWeeklyMenuItemAvailabilityCommandHandler struct {
	uowFactory UoWFactory[CatalogUoW]
}

func NewSetWeeklyMenuItemAvailabilityCommandHandler(
	uowFactory UoWFactory[CatalogUoW],
) SetWeeklyMenuItemAvailabilityCommandHandler {
	return SetWeeklyMenuItemAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h *SetWeeklyMenuItemAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetWeeklyMenuItemAvailabilityCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Role().Require(kernel.ManageCatalog); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WeeklyMenuRepository()
	item, err := repo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if cmd.Available() && !item.IsAvailable() {
		if err = ensureSlotIsFree(ctx, repo, item); err != nil {
			return err
		}
	}

	item.SetAvailable(cmd.Available())
	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
