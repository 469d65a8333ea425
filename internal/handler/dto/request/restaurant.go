package request

import "restaurant-reservation/internal/usecase/commands"

type RegisterRestaurantRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Location    string `json:"location" binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	PhoneNumber string `json:"phoneNumber" binding:"max=20"`
}

func (r *RegisterRestaurantRequest) ToInput() commands.RegisterRestaurantInput {
	return commands.RegisterRestaurantInput{
		Name:        r.Name,
		Location:    r.Location,
		Description: r.Description,
		PhoneNumber: r.PhoneNumber,
	}
}
