package readstore

import (
	"context"

	"restaurant-reservation/internal/infra"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/usecase/queries"
)

type RestaurantViewQueries interface {
	GetRestaurantByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Restaurants, error)
	ListRestaurants(ctx context.Context, db sqlc.DBTX) ([]sqlc.Restaurants, error)
}

type RestaurantReadStore struct {
	queries RestaurantViewQueries
	db      sqlc.DBTX
}

func NewRestaurantReadStore(queries RestaurantViewQueries, db sqlc.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RestaurantReadStore) FindByID(ctx context.Context, id int64) (*queries.RestaurantView, error) {
	row, err := r.queries.GetRestaurantByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find restaurant view by id", err)
	}
	return restaurantView(row), nil
}

func (r *RestaurantReadStore) List(ctx context.Context) ([]*queries.RestaurantView, error) {
	rows, err := r.queries.ListRestaurants(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurants", err)
	}

	views := make([]*queries.RestaurantView, 0, len(rows))
	for _, row := range rows {
		views = append(views, restaurantView(row))
	}
	return views, nil
}

func restaurantView(row sqlc.Restaurants) *queries.RestaurantView {
	return &queries.RestaurantView{
		ID:          row.ID,
		ManagerID:   row.ManagerID,
		Name:        row.Name,
		Location:    row.Location,
		Description: row.Description,
		PhoneNumber: row.PhoneNumber,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
