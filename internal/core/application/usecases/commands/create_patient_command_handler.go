package commands

import (
	"context"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/domain/model/patient"
)

type CreatePatientCommandHandler struct {
	uowFactory UoWFactory[PatientUoW]
}

func NewCreatePatientCommandHandler(uowFactory UoWFactory[PatientUoW]) CreatePatientCommandHandler {
	return CreatePatientCommandHandler{uowFactory: uowFactory}
}

func (h *CreatePatientCommandHandler) Handle(ctx context.Context, cmd CreatePatientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Role().Require(kernel.ManagePatients); err != nil {
		return err
	}

	p, err := patient.NewPatient(cmd.PatientID(), cmd.FullName(), cmd.Details(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PatientRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
