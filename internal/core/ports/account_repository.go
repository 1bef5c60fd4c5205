package ports

import (
	"context"

	"clinicmeals/internal/core/domain/model/account"
	"clinicmeals/internal/core/domain/model/kernel"
)

type AccountRepository interface {
	// Add returns *errs.ValueIsInvalidError when the login is taken.
	Add(ctx context.Context, a *account.Account) error
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)
	GetByLogin(ctx context.Context, login string) (*account.Account, error)
}
