//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-reservation/internal/domain/principal"
	reqdto "restaurant-reservation/internal/handler/dto/request"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
)

type PrincipalBuilder struct {
	ID           int64
	Role         principal.Role
	Email        string
	Password     string
	PasswordHash string
	Name         string
	PhoneNumber  string
	CreatedAt    time.Time
}

func NewCustomerBuilder() *PrincipalBuilder {
	return &PrincipalBuilder{
		ID:           1,
		Role:         principal.RoleCustomer,
		Email:        "guest@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Name:         "Guest Kim",
		PhoneNumber:  "010-1234-5678",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func NewManagerBuilder() *PrincipalBuilder {
	return &PrincipalBuilder{
		ID:           2,
		Role:         principal.RoleManager,
		Email:        "owner@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Name:         "Owner Lee",
		PhoneNumber:  "010-9876-5432",
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *PrincipalBuilder) With(mutate func(*PrincipalBuilder)) *PrincipalBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PrincipalBuilder) BuildDomain() *principal.Principal {
	return principal.Reconstruct(b.ID, b.Role, b.Email, b.PasswordHash, b.Name, b.PhoneNumber, b.CreatedAt)
}

// BuildNew returns a principal that has not been stored yet.
func (b *PrincipalBuilder) BuildNew() *principal.Principal {
	return principal.Reconstruct(0, b.Role, b.Email, b.PasswordHash, b.Name, b.PhoneNumber, b.CreatedAt)
}

func (b *PrincipalBuilder) BuildCustomerRow() sqlc.Customers {
	return sqlc.Customers{
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Name:         b.Name,
		PhoneNumber:  b.PhoneNumber,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *PrincipalBuilder) BuildManagerRow() sqlc.Managers {
	return sqlc.Managers{
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Name:         b.Name,
		PhoneNumber:  b.PhoneNumber,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *PrincipalBuilder) BuildSignUpDTO() reqdto.SignUpRequest {
	return reqdto.SignUpRequest{
		Email:       b.Email,
		Password:    b.Password,
		Name:        b.Name,
		PhoneNumber: b.PhoneNumber,
	}
}

func (b *PrincipalBuilder) BuildSignInDTO() reqdto.SignInRequest {
	return reqdto.SignInRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}
