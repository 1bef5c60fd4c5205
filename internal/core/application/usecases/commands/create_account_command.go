package commands

import (
	"errors"
	"fmt"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
	"clinicmeals/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

const MinPasswordLength = 8

type CreateAccountCommand struct {
	actor       kernel.Actor
	accountID   kernel.UUID
	login       string
	displayName string
	password    string
	role        kernel.Role

	guard guard.ConstructorGuard
}

func NewCreateAccountCommand(
	actor kernel.Actor,
	accountID kernel.UUID,
	login, displayName, password string,
	role kernel.Role,
) (CreateAccountCommand, error) {
	var passwordErr error
	if len(password) < MinPasswordLength {
		passwordErr = errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", MinPasswordLength))
	}
	if err := errors.Join(actor.Validate(), accountID.Validate(), role.Validate(), passwordErr); err != nil {
		return CreateAccountCommand{}, err
	}
	return CreateAccountCommand{
		actor:       actor,
		accountID:   accountID,
		login:       login,
		displayName: displayName,
		password:    password,
		role:        role,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

func (c CreateAccountCommand) Actor() kernel.Actor    { return c.actor }
func (c CreateAccountCommand) AccountID() kernel.UUID { return c.accountID }
func (c CreateAccountCommand) Login() string          { return c.login }
func (c CreateAccountCommand) DisplayName() string    { return c.displayName }
func (c CreateAccountCommand) Password() string       { return c.password }
func (c CreateAccountCommand) Role() kernel.Role      { return c.role }
