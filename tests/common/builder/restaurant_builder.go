//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-reservation/internal/domain/restaurant"
	reqdto "restaurant-reservation/internal/handler/dto/request"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/usecase/queries"
)

type RestaurantBuilder struct {
	ID          int64
	ManagerID   int64
	Name        string
	Location    string
	Description string
	PhoneNumber string
	CreatedAt   time.Time
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:          10,
		ManagerID:   2,
		Name:        "Seoul Table",
		Location:    "12 Jongno-gu, Seoul",
		Description: "Seasonal Korean dishes",
		PhoneNumber: "02-123-4567",
		CreatedAt:   time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (b *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RestaurantBuilder) BuildDomain() *restaurant.Restaurant {
	return restaurant.Reconstruct(b.ID, b.ManagerID, b.Name, b.Location, b.Description, b.PhoneNumber, b.CreatedAt, b.CreatedAt)
}

func (b *RestaurantBuilder) BuildInfra() sqlc.Restaurants {
	return sqlc.Restaurants{
		ID:          b.ID,
		ManagerID:   b.ManagerID,
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
		PhoneNumber: b.PhoneNumber,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *RestaurantBuilder) BuildView() *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:          b.ID,
		ManagerID:   b.ManagerID,
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
		PhoneNumber: b.PhoneNumber,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *RestaurantBuilder) BuildRegisterDTO() reqdto.RegisterRestaurantRequest {
	return reqdto.RegisterRestaurantRequest{
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
		PhoneNumber: b.PhoneNumber,
	}
}
