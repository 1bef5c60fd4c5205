package commands

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
)

type UpdateEmployeeMenuCommandHandler struct {
	uowFactory UoWFactory[CatalogUoW]
}

func NewUpdateEmployeeMenuCommandHandler(uowFactory UoWFactory[CatalogUoW]) UpdateEmployeeMenuCommandHandler {
	return UpdateEmployeeMenuCommandHandler{uowFactory: uowFactory}
}

// Handle applies the change. Orders already placed keep their total.
func (h *UpdateEmployeeMenuCommandHandler) Handle(ctx context.Context, cmd UpdateEmployeeMenuCommand) error {
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

	repo := uow.EmployeeMenuRepository()
	menu, err := repo.Get(ctx, cmd.MenuID())
	if err != nil {
		return err
	}
	if price := cmd.BasePrice(); price != nil {
		if err = menu.ChangePrice(*price); err != nil {
			return err
		}
	}
	if available := cmd.Available(); available != nil {
		menu.SetAvailable(*available)
	}
	if err = repo.Update(ctx, menu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
