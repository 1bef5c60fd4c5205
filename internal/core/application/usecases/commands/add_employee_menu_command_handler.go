package commands

import (
	"context"
	"time"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
)

type AddEmployeeMenuCommandHandler struct {
	uowFactory UoWFactory[CatalogUoW]
}

func NewAddEmployeeMenuCommandHandler(uowFactory UoWFactory[CatalogUoW]) AddEmployeeMenuCommandHandler {
	return AddEmployeeMenuCommandHandler{uowFactory: uowFactory}
}

func (h *AddEmployeeMenuCommandHandler) Handle(ctx context.Context, cmd AddEmployeeMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Role().Require(kernel.ManageCatalog); err != nil {
		return err
	}

	menu, err := catalog.NewEmployeeMenu(cmd.MenuID(), cmd.Name(), cmd.Description(), cmd.BasePrice(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EmployeeMenuRepository().Add(ctx, menu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
