package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/account"
	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/ports"
	"clinicmeals/internal/pkg/errs"
)

type CreateAccountCommandHandler struct {
	uowFactory UoWFactory[AccountUoW]
	hasher     ports.PasswordHasher
}

func NewCreateAccountCommandHandler(uowFactory UoWFactory[AccountUoW], hasher ports.PasswordHasher) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

func (h *CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Role().Require(kernel.ManageAccounts); err != nil {
		return err
	}
	return createAccount(ctx, h.uowFactory, h.hasher, cmd.AccountID(), cmd.Login(), cmd.DisplayName(), cmd.Password(), cmd.Role())
}

// EnsureAdminAccount creates the bootstrap administrator unless an account
// with that login exists. It runs once at start-up without an actor.
func (h *CreateAccountCommandHandler) EnsureAdminAccount(ctx context.Context, login, displayName, password string) (bool, error) {
	login = strings.ToLower(strings.TrimSpace(login))

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	_, err := uow.AccountRepository().GetByLogin(ctx, login)
	_ = uow.Rollback(ctx)

	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return false, err
	}

	if err = createAccount(ctx, h.uowFactory, h.hasher, kernel.NewUUID(), login, displayName, password, kernel.Admin); err != nil {
		return false, err
	}
	return true, nil
}

func createAccount(
	ctx context.Context,
	uowFactory UoWFactory[AccountUoW],
	hasher ports.PasswordHasher,
	id kernel.UUID,
	login, displayName, password string,
	role kernel.Role,
) error {
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	a, err := account.NewAccount(id, login, displayName, hash, role, time.Now().UTC())
	if err != nil {
		return err
	}

	uow := uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, a); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
