package queries

import (
	"context"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/shared"
)

type RestaurantReadStore interface {
	FindByID(ctx context.Context, id int64) (*RestaurantView, error)
	List(ctx context.Context) ([]*RestaurantView, error)
}

type RestaurantQueries interface {
	Get(ctx context.Context, id int64) (*RestaurantView, error)
	List(ctx context.Context) ([]*RestaurantView, error)
}

type restaurantQueriesImpl struct {
	store RestaurantReadStore
}

func NewRestaurantQueries(store RestaurantReadStore) RestaurantQueries {
	return &restaurantQueriesImpl{store: store}
}

func (q *restaurantQueriesImpl) Get(ctx context.Context, id int64) (*RestaurantView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(shared.ErrRestaurantNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *restaurantQueriesImpl) List(ctx context.Context) ([]*RestaurantView, error) {
	return q.store.List(ctx)
}

// ownedRestaurant loads the restaurant and checks that actor manages it.
func ownedRestaurant(ctx context.Context, store RestaurantReadStore, actor *principal.Principal, restaurantID int64) (*RestaurantView, error) {
	if err := principal.RequireRole(actor, principal.RoleManager); err != nil {
		return nil, err
	}

	view, err := store.FindByID(ctx, restaurantID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(shared.ErrRestaurantNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	if view.ManagerID != actor.ID() {
		return nil, errs.Mark(shared.ErrNotRestaurantManager, errs.ErrAuthorization)
	}
	return view, nil
}
