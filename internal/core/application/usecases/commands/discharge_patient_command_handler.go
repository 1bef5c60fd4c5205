package commands

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
)

type DischargePatientCommandHandler struct {
	uowFactory UoWFactory[PatientUoW]
}

func NewDischargePatientCommandHandler(uowFactory UoWFactory[PatientUoW]) DischargePatientCommandHandler {
	return DischargePatientCommandHandler{uowFactory: uowFactory}
}

func (h *DischargePatientCommandHandler) Handle(ctx context.Context, cmd DischargePatientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Role().Require(kernel.ManagePatients); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PatientRepository()
	p, err := repo.Get(ctx, cmd.PatientID())
	if err != nil {
		return err
	}
	if err = p.Discharge(cmd.DischargedAt()); err != nil {
		return err
	}
	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
