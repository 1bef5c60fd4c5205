package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
)

// SeedCatalogResult counts what the seed actually inserted.
type SeedCatalogResult struct {
	WeeklyAdded int
	MenusAdded  int
}

// SeedCatalogCommandHandler inserts seed entries that are not already
// present: a weekly item whose slot is served by an available item, or an
// employee menu whose name exists, is skipped.
type SeedCatalogCommandHandler struct {
	uowFactory UoWFactory[CatalogUoW]
	logger     *slog.Logger
}

func NewSeedCatalogCommandHandler(uowFactory UoWFactory[CatalogUoW], logger *slog.Logger) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{uowFactory: uowFactory, logger: logger.With("component", "catalog_seed")}
}

func (h *SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) (SeedCatalogResult, error) {
	if err := cmd.Validate(); err != nil {
		return SeedCatalogResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SeedCatalogResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var result SeedCatalogResult
	now := time.Now().UTC()

	weeklyRepo := uow.WeeklyMenuRepository()
	existing, err := weeklyRepo.ListAll(ctx)
	if err != nil {
		return SeedCatalogResult{}, err
	}
	served := make(map[catalog.Slot]bool, len(existing))
	for _, item := range existing {
		if item.IsAvailable() {
			served[item.Slot()] = true
		}
	}
	for _, seed := range cmd.Weekly() {
		if served[seed.Slot] {
			h.logger.DebugContext(ctx, "weekly slot already served, seed skipped", "slot", seed.Slot.String())
			continue
		}
		item, itemErr := catalog.NewWeeklyMenuItem(kernel.NewUUID(), seed.Slot, seed.DishName, seed.Description, now)
		if itemErr != nil {
			return SeedCatalogResult{}, itemErr
		}
		if err = weeklyRepo.Add(ctx, item); err != nil {
			return SeedCatalogResult{}, err
		}
		served[seed.Slot] = true
		result.WeeklyAdded++
	}

	menuRepo := uow.EmployeeMenuRepository()
	menus, err := menuRepo.ListAll(ctx)
	if err != nil {
		return SeedCatalogResult{}, err
	}
	names := make(map[string]bool, len(menus))
	for _, m := range menus {
		names[strings.ToLower(m.Name())] = true
	}
	for _, seed := range cmd.Menus() {
		if names[strings.ToLower(strings.TrimSpace(seed.Name))] {
			continue
		}
		menu, menuErr := catalog.NewEmployeeMenu(kernel.NewUUID(), seed.Name, seed.Description, seed.BasePrice, now)
		if menuErr != nil {
			return SeedCatalogResult{}, menuErr
		}
		if err = menuRepo.Add(ctx, menu); err != nil {
			return SeedCatalogResult{}, err
		}
		names[strings.ToLower(menu.Name())] = true
		result.MenusAdded++
	}

	if err = uow.Commit(ctx); err != nil {
		return SeedCatalogResult{}, err
	}

	h.logger.InfoContext(ctx, "catalog seeded", "weekly_added", result.WeeklyAdded, "menus_added", result.MenusAdded)
	return result, nil
}
