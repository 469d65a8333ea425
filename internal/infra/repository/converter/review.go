package converter

import (
	"restaurant-reservation/internal/domain/review"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
)

func ReviewFromRow(row sqlc.Reviews) *review.Review {
	return review.Reconstruct(row.ID, row.CustomerID, row.RestaurantID, row.ReservationID, row.Title, row.Comment, int(row.Rating), row.CreatedAt, row.UpdatedAt)
}

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		CustomerID:    r.CustomerID(),
		RestaurantID:  r.RestaurantID(),
		ReservationID: r.ReservationID(),
		Title:         r.Title().String(),
		Comment:       r.Comment().String(),
		Rating:        int32(r.Rating().Value()), // #nosec G115 -- rating is 1..5
		CreatedAt:     r.CreatedAt(),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Title:     r.Title().String(),
		Comment:   r.Comment().String(),
		Rating:    int32(r.Rating().Value()), // #nosec G115 -- rating is 1..5
		UpdatedAt: r.UpdatedAt(),
	}
}
