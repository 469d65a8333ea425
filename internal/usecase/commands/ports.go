package commands

import (
	"time"

	"restaurant-reservation/internal/domain/principal"
)

// TokenIssuer signs access tokens for authenticated principals.
type TokenIssuer interface {
	Issue(principalID int64, email string, role principal.Role) (string, error)
	TTL() time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}
