package commands

import (
	"errors"
	"strings"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/patient"
	"clinicmeals/internal/pkg/errs"
	"clinicmeals/internal/pkg/guard"
)

var ErrCreatePatientCommandIsNotConstructed = errors.New(
	"CreatePatientCommand must be created via NewCreatePatientCommand constructor",
)

type CreatePatientCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	patientID kernel.UUID
	fullName  string
	details   patient.Details

	guard guard.ConstructorGuard
}

func NewCreatePatientCommand(
	actor kernel.Actor,
	patientID kernel.UUID,
	fullName string,
	details patient.Details,
) (CreatePatientCommand, error) {
	cmd := CreatePatientCommand{
		actor:     actor,
		patientID: patientID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}

	var nameErr error
	if strings.TrimSpace(fullName) == "" {
		nameErr = errs.NewValueIsRequiredError("full name")
	}
	if err := errors.Join(actor.Validate(), patientID.Validate(), nameErr); err != nil {
		return CreatePatientCommand{}, err
	}
	cmd.fullName = fullName
	return cmd, nil
}

func (c CreatePatientCommand) Validate() error {
	return c.guard.Validate(ErrCreatePatientCommandIsNotConstructed)
}

func (c CreatePatientCommand) Actor() kernel.Actor      { return c.actor }
func (c CreatePatientCommand) PatientID() kernel.UUID   { return c.patientID }
func (c CreatePatientCommand) FullName() string         { return c.fullName }
func (c CreatePatientCommand) Details() patient.Details { return c.details }
