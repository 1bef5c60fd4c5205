package commands

import (
	"errors"
	"strings"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
	"clinicmeals/internal/pkg/guard"
)

var ErrAddEmployeeMenuCommandIsNotConstructed = errors.New(
	"AddEmployeeMenuCommand must be created via NewAddEmployeeMenuCommand constructor",
)

type AddEmployeeMenuCommand struct {
	actor       kernel.Actor
	menuID      kernel.UUID
	name        string
	description string
	basePrice   kernel.Price

	guard guard.ConstructorGuard
}

func NewAddEmployeeMenuCommand(
	actor kernel.Actor,
	menuID kernel.UUID,
	name, description string,
	basePrice kernel.Price,
) (AddEmployeeMenuCommand, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("menu name")
	}
	if err := errors.Join(actor.Validate(), menuID.Validate(), basePrice.Validate(), nameErr); err != nil {
		return AddEmployeeMenuCommand{}, err
	}
	return AddEmployeeMenuCommand{
		actor:       actor,
		menuID:      menuID,
		name:        name,
		description: description,
		basePrice:   basePrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddEmployeeMenuCommand) Validate() error {
	return c.guard.Validate(ErrAddEmployeeMenuCommandIsNotConstructed)
}

func (c AddEmployeeMenuCommand) Actor() kernel.Actor     { return c.actor }
func (c AddEmployeeMenuCommand) MenuID() kernel.UUID     { return c.menuID }
func (c AddEmployeeMenuCommand) Name() string            { return c.name }
func (c AddEmployeeMenuCommand) Description() string     { return c.description }
func (c AddEmployeeMenuCommand) BasePrice() kernel.Price { return c.basePrice }
