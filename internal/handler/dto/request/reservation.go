package request

import (
	"time"

	"restaurant-reservation/internal/usecase/commands"
)

type CreateReservationRequest struct {
	RestaurantID    int64     `json:"restaurantId" binding:"required,min=1"`
	PeopleCount     int       `json:"peopleCount" binding:"required,min=1,max=100"`
	ReservationTime time.Time `json:"reservationTime" binding:"required"`
}

func (r *CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		RestaurantID:    r.RestaurantID,
		PeopleCount:     r.PeopleCount,
		ReservationTime: r.ReservationTime,
	}
}

// VisitRequest must repeat the customer's name and phone number exactly as registered.
type VisitRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

func (r *VisitRequest) ToInput() commands.VisitInput {
	return commands.VisitInput{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
	}
}
