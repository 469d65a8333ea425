package readstore

import (
	"context"

	"restaurant-reservation/internal/infra"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViewsByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID int64) ([]sqlc.ListReservationViewsByRestaurantRow, error)
	ListReservationViewsByCustomer(ctx context.Context, db sqlc.DBTX, customerID int64) ([]sqlc.ListReservationViewsByCustomerRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation view by id", err)
	}
	return reservationView(sqlc.ListReservationViewsByRestaurantRow(row)), nil
}

func (r *ReservationReadStore) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by restaurant", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, reservationView(row))
	}
	return views, nil
}

func (r *ReservationReadStore) ListByCustomer(ctx context.Context, customerID int64) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViewsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, reservationView(sqlc.ListReservationViewsByRestaurantRow(row)))
	}
	return views, nil
}

// The three view rows share one column list, so they convert to each other.
func reservationView(row sqlc.ListReservationViewsByRestaurantRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:                  row.ID,
		CustomerID:          row.CustomerID,
		CustomerName:        row.CustomerName,
		CustomerPhoneNumber: row.CustomerPhoneNumber,
		RestaurantID:        row.RestaurantID,
		RestaurantName:      row.RestaurantName,
		PeopleCount:         row.PeopleCount,
		ReservationTime:     row.ReservationTime,
		Status:              row.Status,
		Visited:             row.Visited,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
