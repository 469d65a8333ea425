package repository

import (
	"context"

	"restaurant-reservation/internal/domain/restaurant"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/infra/repository/converter"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
)

type RestaurantWriteQueries interface {
	CreateRestaurant(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRestaurantParams) (int64, error)
	GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Restaurants, error)
}

type RestaurantRepository struct {
	queries RestaurantWriteQueries
	db      sqlc.DBTX
}

func NewRestaurantRepository(queries RestaurantWriteQueries, db sqlc.DBTX) *RestaurantRepository {
	return &RestaurantRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find restaurant by id", err)
	}
	return converter.RestaurantFromRow(row), nil
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *restaurant.Restaurant) (int64, error) {
	id, err := r.queries.CreateRestaurant(ctx, r.db, converter.RestaurantToCreateParams(rest))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create restaurant", err)
	}
	return id, nil
}
