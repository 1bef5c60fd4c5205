package commands

import (
	"errors"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var ErrSetWeeklyMenuItemAvailabilityCommandIsNotConstructed = errors.New(
	"SetWeeklyMenuItemAvailabilityCommand must be created via NewSetWeeklyMenuItemAvailabilityCommand constructor",
)

type SetWeeklyMenuItemAvailabilityCommand struct {
	actor     kernel.Actor
	itemID    kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetWeeklyMenuItemAvailabilityCommand(
	actor kernel.Actor,
	itemID kernel.UUID,
	available bool,
) (SetWeeklyMenuItemAvailabilityCommand, error) {
	if err := errors.Join(actor.Validate(), itemID.Validate()); err != nil {
		return SetWeeklyMenuItemAvailabilityCommand{}, err
	}
	return SetWeeklyMenuItemAvailabilityCommand{
		actor:     actor,
		itemID:    itemID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetWeeklyMenuItemAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetWeeklyMenuItemAvailabilityCommandIsNotConstructed)
}

func (c SetWeeklyMenuItemAvailabilityCommand) Actor() kernel.Actor { return c.actor }
func (c SetWeeklyMenuItemAvailabilityCommand) ItemID() kernel.UUID { return c.itemID }
func (c SetWeeklyMenuItemAvailabilityCommand) Available() bool     { return c.available }
