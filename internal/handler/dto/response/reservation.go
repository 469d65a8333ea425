package response

import (
	"time"

	"restaurant-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID                  int64     `json:"id"`
	CustomerID          int64     `json:"customerId"`
	CustomerName        string    `json:"customerName"`
	CustomerPhoneNumber string    `json:"customerPhoneNumber"`
	RestaurantID        int64     `json:"restaurantId"`
	RestaurantName      string    `json:"restaurantName"`
	PeopleCount         int32     `json:"peopleCount"`
	ReservationTime     time.Time `json:"reservationTime"`
	Status              string    `json:"status"`
	Visited             bool      `json:"visited"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// CreatedResponse is returned by endpoints that only report the new row's id.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromReservationViews(views []*queries.ReservationView) ([]*ReservationResponse, error) {
	res := make([]*ReservationResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
