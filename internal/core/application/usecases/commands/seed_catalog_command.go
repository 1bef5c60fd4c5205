package commands

import (
	"errors"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var ErrSeedCatalogCommandIsNotConstructed = errors.New(
	"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
)

type SeedWeeklyMenuItem struct {
	Slot        catalog.Slot
	DishName    string
	Description string
}

type SeedEmployeeMenu struct {
	Name        string
	Description string
	BasePrice   kernel.Price
}

// SeedCatalogCommand bootstraps the catalog at start-up from a trusted file.
// It runs without an actor.
type SeedCatalogCommand struct {
	weekly []SeedWeeklyMenuItem
	menus  []SeedEmployeeMenu

	guard guard.ConstructorGuard
}

func NewSeedCatalogCommand(weekly []SeedWeeklyMenuItem, menus []SeedEmployeeMenu) (SeedCatalogCommand, error) {
	var errList []error
	for _, w := range weekly {
		errList = append(errList, w.Slot.Validate())
	}
	for _, m := range menus {
		errList = append(errList, m.BasePrice.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return SeedCatalogCommand{}, err
	}
	return SeedCatalogCommand{weekly: weekly, menus: menus, guard: guard.NewConstructorGuard()}, nil
}

func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}

func (c SeedCatalogCommand) Weekly() []SeedWeeklyMenuItem { return c.weekly }
func (c SeedCatalogCommand) Menus() []SeedEmployeeMenu    { return c.menus }
