package commands

import (
	"context"

	"clinicmeals/internal/core/domain/model/kernel"
)

type UpdatePatientCommandHandler struct {
	uowFactory UoWFactory[PatientUoW]
}

func NewUpdatePatientCommandHandler(uowFactory UoWFactory[PatientUoW]) UpdatePatientCommandHandler {
	return UpdatePatientCommandHandler{uowFactory: uowFactory}
}

func (h *UpdatePatientCommandHandler) Handle(ctx context.Context, cmd UpdatePatientCommand) error {
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
	if err = p.Edit(cmd.Details()); err != nil {
		return err
	}
	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
