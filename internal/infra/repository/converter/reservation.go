package converter

import (
	"restaurant-reservation/internal/domain/reservation"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
)

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(
		row.ID,
		row.CustomerID,
		row.RestaurantID,
		row.ManagerID,
		int(row.PeopleCount),
		row.ReservationTime,
		status,
		row.Visited,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func ReservationToCreateParams(r *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		CustomerID:      r.CustomerID(),
		RestaurantID:    r.RestaurantID(),
		ManagerID:       r.ManagerID(),
		PeopleCount:     int32(r.PeopleCount().Value()), // #nosec G115 -- bounded by MaxPeopleCount
		ReservationTime: r.ReservationTime(),
		Status:          r.Status().String(),
		Visited:         r.Visited(),
		CreatedAt:       r.CreatedAt(),
	}
}

func ReservationToStatusParams(r *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:             r.ID(),
		Status:         r.Status().String(),
		Visited:        r.Visited(),
		UpdatedAt:      r.UpdatedAt(),
		ExpectedStatus: r.PersistedStatus().String(),
	}
}
