package request

import (
	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/usecase/commands"
)

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Name        string `json:"name" binding:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"required,max=20"`
}

func (r *SignUpRequest) ToInput(role principal.Role) commands.SignUpInput {
	return commands.SignUpInput{
		Role:        role,
		Email:       r.Email,
		Password:    r.Password,
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
	}
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *SignInRequest) ToInput(role principal.Role) commands.SignInInput {
	return commands.SignInInput{
		Role:     role,
		Email:    r.Email,
		Password: r.Password,
	}
}
