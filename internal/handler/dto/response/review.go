package response

import (
	"time"

	"restaurant-reservation/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	RestaurantID  int64     `json:"restaurantId"`
	ReservationID int64     `json:"reservationId"`
	Title         string    `json:"title"`
	Comment       string    `json:"comment"`
	Rating        int32     `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromReviewViews(views []*queries.ReviewView) ([]*ReviewResponse, error) {
	res := make([]*ReviewResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
