package queries

import (
	"context"

	"restaurant-reservation/internal/domain/principal"
)

type ReviewReadStore interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]*ReviewView, error)
}

type ReviewQueries interface {
	ListForRestaurant(ctx context.Context, actor *principal.Principal, restaurantID int64) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	reviews     ReviewReadStore
	restaurants RestaurantReadStore
}

func NewReviewQueries(reviews ReviewReadStore, restaurants RestaurantReadStore) ReviewQueries {
	return &reviewQueriesImpl{
		reviews:     reviews,
		restaurants: restaurants,
	}
}

// ListForRestaurant is for the owning manager only.
func (q *reviewQueriesImpl) ListForRestaurant(ctx context.Context, actor *principal.Principal, restaurantID int64) ([]*ReviewView, error) {
	if _, err := ownedRestaurant(ctx, q.restaurants, actor, restaurantID); err != nil {
		return nil, err
	}
	return q.reviews.ListByRestaurant(ctx, restaurantID)
}
