package commands

import (
	"errors"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
	"clinicmeals/internal/pkg/guard"
)

var ErrUpdateEmployeeMenuCommandIsNotConstructed = errors.New(
	"UpdateEmployeeMenuCommand must be created via NewUpdateEmployeeMenuCommand constructor",
)

// UpdateEmployeeMenuCommand changes the base price, the availability, or
// both. A nil field is left untouched.
type UpdateEmployeeMenuCommand struct {
	actor     kernel.Actor
	menuID    kernel.UUID
	basePrice *kernel.Price
	available *bool

	guard guard.ConstructorGuard
}

func NewUpdateEmployeeMenuCommand(
	actor kernel.Actor,
	menuID kernel.UUID,
	basePrice *kernel.Price,
	available *bool,
) (UpdateEmployeeMenuCommand, error) {
	var changeErr error
	if basePrice == nil && available == nil {
		changeErr = errs.NewValueIsRequiredError("price or availability")
	} else if basePrice != nil {
		changeErr = basePrice.Validate()
	}
	if err := errors.Join(actor.Validate(), menuID.Validate(), changeErr); err != nil {
		return UpdateEmployeeMenuCommand{}, err
	}
	return UpdateEmployeeMenuCommand{
		actor:     actor,
		menuID:    menuID,
		basePrice: basePrice,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateEmployeeMenuCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEmployeeMenuCommandIsNotConstructed)
}

func (c UpdateEmployeeMenuCommand) Actor() kernel.Actor      { return c.actor }
func (c UpdateEmployeeMenuCommand) MenuID() kernel.UUID      { return c.menuID }
func (c UpdateEmployeeMenuCommand) BasePrice() *kernel.Price { return c.basePrice }
func (c UpdateEmployeeMenuCommand) Available() *bool         { return c.available }
