package commands

import (
	"context"
	"fmt"
	"time"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

type AddWeeklyMenuItemCommandHandler struct {
	uowFactory UoWFactory[CatalogUoW]
}

func NewAddWeeklyMenuItemCommandHandler(uowFactory UoWFactory[CatalogUoW]) AddWeeklyMenuItemCommandHandler {
	return AddWeeklyMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle adds an available item. A slot already served by another available
// item is rejected.
func (h *AddWeeklyMenuItemCommandHandler) Handle(ctx context.Context, cmd AddWeeklyMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Role().Require(kernel.ManageCatalog); err != nil {
		return err
	}

	item, err := catalog.NewWeeklyMenuItem(cmd.ItemID(), cmd.Slot(), cmd.DishName(), cmd.Description(), time.Now().UTC())
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

	repo := uow.WeeklyMenuRepository()
	if err = ensureSlotIsFree(ctx, repo, item); err != nil {
		return err
	}
	if err = repo.Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type weeklyMenuLister interface {
	ListAll(ctx context.Context) ([]*catalog.WeeklyMenuItem, error)
}

func ensureSlotIsFree(ctx context.Context, repo weeklyMenuLister, item *catalog.WeeklyMenuItem) error {
	items, err := repo.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, other := range items {
		if other.ID().IsEqual(item.ID()) || !other.IsAvailable() {
			continue
		}
		if other.Slot() == item.Slot() {
			return errs.NewValueIsInvalidErrorWithCause("weekly menu slot",
				fmt.Errorf("%s is already served by %q", item.Slot(), other.DishName()))
		}
	}
	return nil
}
