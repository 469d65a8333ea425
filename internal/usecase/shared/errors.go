package shared

import "restaurant-reservation/internal/pkg/errs"

// Sentinels shared by commands and queries. Callers mark them with a category from errs.
var (
	ErrCustomerNotFound       = errs.New("customer not found")
	ErrManagerNotFound        = errs.New("manager not found")
	ErrRestaurantNotFound     = errs.New("restaurant not found")
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrReviewNotFound         = errs.New("review not found")
	ErrNotRestaurantManager   = errs.New("caller does not manage this restaurant")
	ErrNotReservationCustomer = errs.New("caller is not the customer of this reservation")
)
