package commands

import (
	"errors"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/guard"
)

var ErrDischargePatientCommandIsNotConstructed = errors.New(
	"DischargePatientCommand must be created via NewDischargePatientCommand constructor",
)

type DischargePatientCommand struct {
	actor        kernel.Actor
	patientID    kernel.UUID
	dischargedAt time.Time

	guard guard.ConstructorGuard
}

// NewDischargePatientCommand uses the current time when dischargedAt is zero.
func NewDischargePatientCommand(actor kernel.Actor, patientID kernel.UUID, dischargedAt time.Time) (DischargePatientCommand, error) {
	if err := errors.Join(actor.Validate(), patientID.Validate()); err != nil {
		return DischargePatientCommand{}, err
	}
	if dischargedAt.IsZero() {
		dischargedAt = time.Now().UTC()
	}
	return DischargePatientCommand{
		actor:        actor,
		patientID:    patientID,
		dischargedAt: dischargedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DischargePatientCommand) Validate() error {
	return c.guard.Validate(ErrDischargePatientCommandIsNotConstructed)
}

func (c DischargePatientCommand) Actor() kernel.Actor     { return c.actor }
func (c DischargePatientCommand) PatientID() kernel.UUID  { return c.patientID }
func (c DischargePatientCommand) DischargedAt() time.Time { return c.dischargedAt }
