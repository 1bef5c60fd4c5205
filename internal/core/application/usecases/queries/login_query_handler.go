package queries

import (
	"context"
	"errors"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/core/ports"
	"clinicmeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const accountByLoginSQL = `
	SELECT id, password_hash, role, display_name
	FROM accounts
	WHERE login = $1`

type LoginQueryHandler struct {
	db     Querier
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewLoginQueryHandler(db Querier, hasher ports.PasswordHasher, issuer ports.TokenIssuer) LoginQueryHandler {
	return LoginQueryHandler{db: db, hasher: hasher, issuer: issuer}
}

func (h LoginQueryHandler) Handle(ctx context.Context, q LoginQuery) (Session, error) {
	if err := q.Validate(); err != nil {
		return Session{}, err
	}

	var (
		id                  uuid.UUID
		hash, role, display string
	)
	err := h.db.QueryRow(ctx, accountByLoginSQL, q.Login()).Scan(&id, &hash, &role, &display)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, errs.NewPersistenceError("account select", err)
	}
	if err = h.hasher.Compare(hash, q.Password()); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	accountID, err := toUUID(id)
	if err != nil {
		return Session{}, err
	}
	r, err := kernel.RoleFromString(role)
	if err != nil {
		return Session{}, err
	}
	actor, err := kernel.NewActor(accountID, r)
	if err != nil {
		return Session{}, err
	}

	token, expiresAt, err := h.issuer.Issue(actor)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: expiresAt, AccountID: accountID, Role: r, DisplayName: display}, nil
}
