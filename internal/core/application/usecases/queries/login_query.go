package queries

import (
	"errors"
	"strings"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
	"clinicmeals/internal/pkg/errs"
	"clinicmeals/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New("LoginQuery must be created via NewLoginQuery constructor")

// ErrInvalidCredentials covers both an unknown login and a wrong password.
var ErrInvalidCredentials = errors.New("invalid login or password")

// LoginQuery exchanges a login and password for a session token.
type LoginQuery struct {
	login    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginQuery(login, password string) (LoginQuery, error) {
	login = strings.ToLower(strings.TrimSpace(login))

	var errList []error
	if login == "" {
		errList = append(errList, errs.NewValueIsRequiredError("login"))
	}
	if password == "" {
		errList = append(errList, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(errList...); err != nil {
		return LoginQuery{}, err
	}
	return LoginQuery{login: login, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

func (q LoginQuery) Login() string    { return q.login }
func (q LoginQuery) Password() string { return q.password }

type Session struct {
	Token       string
	ExpiresAt   time.Time
	AccountID   kernel.UUID
	Role        kernel.Role
	DisplayName string
}
