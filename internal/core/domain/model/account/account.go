// Package account holds staff accounts: login, password hash and the role
// that session tokens carry.
package account

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

var loginPattern = regexp.MustCompile(`^[a-z0-9._-]{3,64}$`)

type Account struct {
	id           kernel.UUID
	login        string
	displayName  string
	passwordHash string
	role         kernel.Role
	createdAt    time.Time

	isConstructed bool
}

// NewAccount expects an already hashed password; hashing belongs to the
// caller's PasswordHasher.
func NewAccount(id kernel.UUID, login, displayName, passwordHash string, role kernel.Role, createdAt time.Time) (*Account, error) {
	var errList []error
	errList = append(errList, id.Validate(), role.Validate())
	login = strings.ToLower(strings.TrimSpace(login))
	if !loginPattern.MatchString(login) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("login", fmt.Errorf("%q must match %s", login, loginPattern)))
	}
	if strings.TrimSpace(displayName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("display name"))
	}
	if passwordHash == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password hash"))
	}
	if createdAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("created at"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Account{
		id:            id,
		login:         login,
		displayName:   strings.TrimSpace(displayName),
		passwordHash:  passwordHash,
		role:          role,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID      { return a.id }
func (a *Account) Login() string        { return a.login }
func (a *Account) DisplayName() string  { return a.displayName }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() kernel.Role    { return a.role }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Actor is the identity this account acts as once authenticated.
func (a *Account) Actor() kernel.Actor {
	actor, _ := kernel.NewActor(a.id, a.role)
	return actor
}
