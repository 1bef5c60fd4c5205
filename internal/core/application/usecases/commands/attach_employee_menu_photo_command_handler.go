package commands

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
)

type AttachEmployeeMenuPhotoCommandHandler struct {
	uowFactory UoWFactory[CatalogUoW]
}

func NewAttachEmployeeMenuPhotoCommandHandler(uowFactory UoWFactory[CatalogUoW]) AttachEmployeeMenuPhotoCommandHandler {
	return AttachEmployeeMenuPhotoCommandHandler{uowFactory: uowFactory}
}

func (h *AttachEmployeeMenuPhotoCommandHandler) Handle(ctx context.Context, cmd AttachEmployeeMenuPhotoCommand) error {
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
	if err = menu.AttachPhoto(cmd.Photo()); err != nil {
		return err
	}
	if err = repo.Update(ctx, menu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
