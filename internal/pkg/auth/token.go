package auth

import (
	"errors"
	"fmt"
	"time"

	"clinicmeals/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL = 12 * time.Hour
	issuer          = "clinicmeals"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Claims carries the account id in Subject and the role label in Role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTStrategy issues and verifies HS256 session tokens.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*JWTStrategy)

func WithTTL(ttl time.Duration) Option {
	return func(s *JWTStrategy) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *JWTStrategy) { s.now = now }
}

func NewJWTStrategy(secret string, opts ...Option) *JWTStrategy {
	s := &JWTStrategy{secret: []byte(secret), ttl: DefaultTokenTTL, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *JWTStrategy) Issue(actor kernel.Actor) (string, time.Time, error) {
	if err := actor.Validate(); err != nil {
		return "", time.Time{}, err
	}
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		Role: actor.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify returns the actor named by a valid, unexpired token. Every failure
// is reported as ErrInvalidToken.
func (s *JWTStrategy) Verify(token string) (kernel.Actor, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	accountID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}
	role, err := kernel.RoleFromString(claims.Role)
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}
	actor, err := kernel.NewActor(accountID, role)
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}
	return actor, nil
}
