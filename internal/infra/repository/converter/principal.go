package converter

import (
	"restaurant-reservation/internal/domain/principal"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
)

func CustomerFromRow(row sqlc.Customers) *principal.Principal {
	return principal.Reconstruct(row.ID, principal.RoleCustomer, row.Email, row.PasswordHash, row.Name, row.PhoneNumber, row.CreatedAt)
}

func ManagerFromRow(row sqlc.Managers) *principal.Principal {
	return principal.Reconstruct(row.ID, principal.RoleManager, row.Email, row.PasswordHash, row.Name, row.PhoneNumber, row.CreatedAt)
}

func PrincipalToCreateCustomerParams(p *principal.Principal) sqlc.CreateCustomerParams {
	return sqlc.CreateCustomerParams{
		Email:        p.Email().Value(),
		PasswordHash: p.PasswordHash(),
		Name:         p.Name().Value(),
		PhoneNumber:  p.PhoneNumber().Value(),
		CreatedAt:    p.CreatedAt(),
	}
}

func PrincipalToCreateManagerParams(p *principal.Principal) sqlc.CreateManagerParams {
	return sqlc.CreateManagerParams{
		Email:        p.Email().Value(),
		PasswordHash: p.PasswordHash(),
		Name:         p.Name().Value(),
		PhoneNumber:  p.PhoneNumber().Value(),
		CreatedAt:    p.CreatedAt(),
	}
}
