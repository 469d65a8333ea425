package converter

import (
	"restaurant-reservation/internal/domain/restaurant"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
)

func RestaurantFromRow(row sqlc.Restaurants) *restaurant.Restaurant {
	return restaurant.Reconstruct(row.ID, row.ManagerID, row.Name, row.Location, row.Description, row.PhoneNumber, row.CreatedAt, row.UpdatedAt)
}

func RestaurantToCreateParams(r *restaurant.Restaurant) sqlc.CreateRestaurantParams {
	return sqlc.CreateRestaurantParams{
		ManagerID:   r.ManagerID(),
		Name:        r.Name(),
		Location:    r.Location(),
		Description: r.Description(),
		PhoneNumber: r.PhoneNumber(),
		CreatedAt:   r.CreatedAt(),
	}
}
