package commands

import (
	"errors"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var ErrCreatePatientOrderCommandIsNotConstructed = errors.New(
	"CreatePatientOrderCommand must be created via NewCreatePatientOrderCommand constructor",
)

type CreatePatientOrderCommand struct {
	actor        kernel.Actor
	orderID      kernel.UUID
	patientID    kernel.UUID
	mealType     kernel.MealType
	day          kernel.DayOfWeek
	instructions string

	guard guard.ConstructorGuard
}

// NewCreatePatientOrderCommand resolves the menu of day. The caller decides
// which day "today" is in the clinic time zone.
func NewCreatePatientOrderCommand(
	actor kernel.Actor,
	orderID, patientID kernel.UUID,
	mealType kernel.MealType,
	day kernel.DayOfWeek,
	instructions string,
) (CreatePatientOrderCommand, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		patientID.Validate(),
		mealType.Validate(),
		day.Validate(),
	); err != nil {
		return CreatePatientOrderCommand{}, err
	}

	return CreatePatientOrderCommand{
		actor:        actor,
		orderID:      orderID,
		patientID:    patientID,
		mealType:     mealType,
		day:          day,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePatientOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePatientOrderCommandIsNotConstructed)
}

func (c CreatePatientOrderCommand) Actor() kernel.Actor       { return c.actor }
func (c CreatePatientOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c CreatePatientOrderCommand) PatientID() kernel.UUID    { return c.patientID }
func (c CreatePatientOrderCommand) MealType() kernel.MealType { return c.mealType }
func (c CreatePatientOrderCommand) Day() kernel.DayOfWeek     { return c.day }
func (c CreatePatientOrderCommand) Instructions() string      { return c.instructions }
