package queries

import (
	"context"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/shared"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*ReservationView, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*ReservationView, error)
}

type ReservationQueries interface {
	// Get is visible to the reservation's customer and the restaurant's manager.
	Get(ctx context.Context, actor *principal.Principal, id int64) (*ReservationView, error)
	ListForRestaurant(ctx context.Context, actor *principal.Principal, restaurantID int64) ([]*ReservationView, error)
	ListForCustomer(ctx context.Context, actor *principal.Principal) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	restaurants  RestaurantReadStore
}

func NewReservationQueries(reservations ReservationReadStore, restaurants RestaurantReadStore) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		restaurants:  restaurants,
	}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, actor *principal.Principal, id int64) (*ReservationView, error) {
	if actor == nil {
		return nil, errs.Mark(principal.ErrForbidden, errs.ErrAuthorization)
	}

	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(shared.ErrReservationNotFound, errs.ErrNotFound)
		}
		return nil, err
	}

	switch actor.Role() {
	case principal.RoleCustomer:
		if view.CustomerID != actor.ID() {
			return nil, errs.Mark(shared.ErrNotReservationCustomer, errs.ErrAuthorization)
		}
	case principal.RoleManager:
		if _, err := ownedRestaurant(ctx, q.restaurants, actor, view.RestaurantID); err != nil {
			return nil, err
		}
	default:
		return nil, errs.Mark(principal.ErrForbidden, errs.ErrAuthorization)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForRestaurant(ctx context.Context, actor *principal.Principal, restaurantID int64) ([]*ReservationView, error) {
	if _, err := ownedRestaurant(ctx, q.restaurants, actor, restaurantID); err != nil {
		return nil, err
	}
	return q.reservations.ListByRestaurant(ctx, restaurantID)
}

func (q *reservationQueriesImpl) ListForCustomer(ctx context.Context, actor *principal.Principal) ([]*ReservationView, error) {
	if err := principal.RequireRole(actor, principal.RoleCustomer); err != nil {
		return nil, err
	}
	return q.reservations.ListByCustomer(ctx, actor.ID())
}
