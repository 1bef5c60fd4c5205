package commands

import (
	"errors"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/patient"
	"clinicmeals/internal/pkg/guard"
)

var ErrUpdatePatientCommandIsNotConstructed = errors.New(
	"UpdatePatientCommand must be created via NewUpdatePatientCommand constructor",
)

// UpdatePatientCommand replaces room, service, diet and allergies. Existing
// orders keep the menu text they were created with.
type UpdatePatientCommand struct {
	actor     kernel.Actor
	patientID kernel.UUID
	details   patient.Details

	guard guard.ConstructorGuard
}

func NewUpdatePatientCommand(actor kernel.Actor, patientID kernel.UUID, details patient.Details) (UpdatePatientCommand, error) {
	if err := errors.Join(actor.Validate(), patientID.Validate()); err != nil {
		return UpdatePatientCommand{}, err
	}
	return UpdatePatientCommand{
		actor:     actor,
		patientID: patientID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdatePatientCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePatientCommandIsNotConstructed)
}

func (c UpdatePatientCommand) Actor() kernel.Actor      { return c.actor }
func (c UpdatePatientCommand) PatientID() kernel.UUID   { return c.patientID }
func (c UpdatePatientCommand) Details() patient.Details { return c.details }
