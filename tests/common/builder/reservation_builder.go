//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-reservation/internal/domain/reservation"
	reqdto "restaurant-reservation/internal/handler/dto/request"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID              int64
	CustomerID      int64
	RestaurantID    int64
	ManagerID       int64
	PeopleCount     int
	ReservationTime time.Time
	Status          reservation.Status
	Visited         bool
	CreatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:              100,
		CustomerID:      1,
		RestaurantID:    10,
		ManagerID:       2,
		PeopleCount:     4,
		ReservationTime: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC),
		Status:          reservation.StatusPending,
		CreatedAt:       time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	b.Visited = status == reservation.StatusCompleted
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(
		b.ID, b.CustomerID, b.RestaurantID, b.ManagerID,
		b.PeopleCount, b.ReservationTime, b.Status, b.Visited,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	return sqlc.Reservations{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		RestaurantID:    b.RestaurantID,
		ManagerID:       b.ManagerID,
		PeopleCount:     int32(b.PeopleCount),
		ReservationTime: b.ReservationTime,
		Status:          b.Status.String(),
		Visited:         b.Visited,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  b.ID,
		CustomerID:          b.CustomerID,
		CustomerName:        "Guest Kim",
		CustomerPhoneNumber: "010-1234-5678",
		RestaurantID:        b.RestaurantID,
		RestaurantName:      "Seoul Table",
		PeopleCount:         int32(b.PeopleCount),
		ReservationTime:     b.ReservationTime,
		Status:              b.Status.String(),
		Visited:             b.Visited,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RestaurantID:    b.RestaurantID,
		PeopleCount:     b.PeopleCount,
		ReservationTime: b.ReservationTime,
	}
}
