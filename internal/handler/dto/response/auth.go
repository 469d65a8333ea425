package response

import "restaurant-reservation/internal/domain/principal"

type SignUpResponse struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}

type SignInResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
	PrincipalID int64  `json:"principalId"`
	Role        string `json:"role"`
}

type MeResponse struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

func FromPrincipal(p *principal.Principal) *MeResponse {
	return &MeResponse{
		ID:          p.ID(),
		Role:        p.Role().String(),
		Email:       p.Email().Value(),
		Name:        p.Name().Value(),
		PhoneNumber: p.PhoneNumber().Value(),
	}
}
