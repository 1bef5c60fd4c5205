package commands

import (
	"errors"
	"strings"

	"clinicmeals/internal/core/domain/model/catalog"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
	"clinicmeals/internal/pkg/guard"
)

var ErrAddWeeklyMenuItemCommandIsNotConstructed = errors.New(
	"AddWeeklyMenuItemCommand must be created via NewAddWeeklyMenuItemCommand constructor",
)

type AddWeeklyMenuItemCommand struct {
	actor       kernel.Actor
	itemID      kernel.UUID
	slot        catalog.Slot
	dishName    string
	description string

	guard guard.ConstructorGuard
}

func NewAddWeeklyMenuItemCommand(
	actor kernel.Actor,
	itemID kernel.UUID,
	slot catalog.Slot,
	dishName, description string,
) (AddWeeklyMenuItemCommand, error) {
	var nameErr error
	if strings.TrimSpace(dishName) == "" {
		nameErr = errs.NewValueIsRequiredError("dish name")
	}
	if err := errors.Join(actor.Validate(), itemID.Validate(), slot.Validate(), nameErr); err != nil {
		return AddWeeklyMenuItemCommand{}, err
	}
	return AddWeeklyMenuItemCommand{
		actor:       actor,
		itemID:      itemID,
		slot:        slot,
		dishName:    dishName,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddWeeklyMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddWeeklyMenuItemCommandIsNotConstructed)
}

func (c AddWeeklyMenuItemCommand) Actor() kernel.Actor { return c.actor }
func (c AddWeeklyMenuItemCommand) ItemID() kernel.UUID { return c.itemID }
func (c AddWeeklyMenuItemCommand) Slot() catalog.Slot  { return c.slot }
func (c AddWeeklyMenuItemCommand) DishName() string    { return c.dishName }
func (c AddWeeklyMenuItemCommand) Description() string { return c.description }
