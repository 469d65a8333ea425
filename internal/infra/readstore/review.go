package readstore

import (
	"context"

	"restaurant-reservation/internal/infra"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/usecase/queries"
)

type ReviewViewQueries interface {
	ListReviewViewsByRestaurant(ctx context.Context, db sqlc.DBTX, restaurantID int64) ([]sqlc.ListReviewViewsByRestaurantRow, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) ListByRestaurant(ctx context.Context, restaurantID int64) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewViewsByRestaurant(ctx, r.db, restaurantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by restaurant", err)
	}

	views := make([]*queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.ReviewView{
			ID:            row.ID,
			CustomerID:    row.CustomerID,
			CustomerName:  row.CustomerName,
			RestaurantID:  row.RestaurantID,
			ReservationID: row.ReservationID,
			Title:         row.Title,
			Comment:       row.Comment,
			Rating:        row.Rating,
			CreatedAt:     row.CreatedAt,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return views, nil
}
