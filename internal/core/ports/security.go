package ports

import (
	"time"

	"clinicmeals/internal/core/domain/model/kernel"
)

// PasswordHasher hashes and checks staff passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs session tokens carrying the actor's id and role.
type TokenIssuer interface {
	Issue(actor kernel.Actor) (token string, expiresAt time.Time, err error)
}
