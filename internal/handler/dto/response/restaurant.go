package response

import (
	"time"

	"restaurant-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RestaurantResponse struct {
	ID          int64     `json:"id"`
	ManagerID   int64     `json:"managerId"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromRestaurantView(v *queries.RestaurantView) (*RestaurantResponse, error) {
	var res RestaurantResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRestaurantViews(views []*queries.RestaurantView) ([]*RestaurantResponse, error) {
	res := make([]*RestaurantResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
