package commands

import (
	"errors"
	"strings"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
	"clinicmeals/internal/pkg/guard"
)

var ErrCreateEmployeeOrderCommandIsNotConstructed = errors.New(
	"CreateEmployeeOrderCommand must be created via NewCreateEmployeeOrderCommand constructor",
)

// CreateEmployeeOrderCommand places a staff meal for the acting employee.
// The accompaniment count is checked by the pricing rule, not here.
type CreateEmployeeOrderCommand struct {
	actor            kernel.Actor
	orderID          kernel.UUID
	menuID           kernel.UUID
	accompaniments   int
	deliveryLocation string
	instructions     string

	guard guard.ConstructorGuard
}

func NewCreateEmployeeOrderCommand(
	actor kernel.Actor,
	orderID, menuID kernel.UUID,
	accompaniments int,
	deliveryLocation, instructions string,
) (CreateEmployeeOrderCommand, error) {
	var locationErr error
	if strings.TrimSpace(deliveryLocation) == "" {
		locationErr = errs.NewValueIsRequiredError("delivery location")
	}
	if err := errors.Join(actor.Validate(), orderID.Validate(), menuID.Validate(), locationErr); err != nil {
		return CreateEmployeeOrderCommand{}, err
	}

	return CreateEmployeeOrderCommand{
		actor:            actor,
		orderID:          orderID,
		menuID:           menuID,
		accompaniments:   accompaniments,
		deliveryLocation: deliveryLocation,
		instructions:     instructions,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c CreateEmployeeOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeOrderCommandIsNotConstructed)
}

func (c CreateEmployeeOrderCommand) Actor() kernel.Actor      { return c.actor }
func (c CreateEmployeeOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c CreateEmployeeOrderCommand) MenuID() kernel.UUID      { return c.menuID }
func (c CreateEmployeeOrderCommand) Accompaniments() int      { return c.accompaniments }
func (c CreateEmployeeOrderCommand) DeliveryLocation() string { return c.deliveryLocation }
func (c CreateEmployeeOrderCommand) Instructions() string     { return c.instructions }
