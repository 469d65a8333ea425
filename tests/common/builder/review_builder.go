//go:build unit || e2e

package builder

import (
	"time"

	domreview "restaurant-reservation/internal/domain/review"
	reqdto "restaurant-reservation/internal/handler/dto/request"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/usecase/queries"
)

type ReviewBuilder struct {
	ID            int64
	CustomerID    int64
	RestaurantID  int64
	ReservationID int64
	Title         string
	Comment       string
	Rating        int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	created := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &ReviewBuilder{
		ID:            500,
		CustomerID:    1,
		RestaurantID:  10,
		ReservationID: 100,
		Title:         "Lovely dinner",
		Comment:       "Excellent service!",
		Rating:        5,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() *domreview.Review {
	return domreview.Reconstruct(r.ID, r.CustomerID, r.RestaurantID, r.ReservationID, r.Title, r.Comment, r.Rating, r.CreatedAt, r.UpdatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		RestaurantID:  r.RestaurantID,
		ReservationID: r.ReservationID,
		Title:         r.Title,
		Comment:       r.Comment,
		Rating:        int32(r.Rating),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CustomerName:  "Guest Kim",
		RestaurantID:  r.RestaurantID,
		ReservationID: r.ReservationID,
		Title:         r.Title,
		Comment:       r.Comment,
		Rating:        int32(r.Rating),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Title:   r.Title,
		Comment: r.Comment,
		Rating:  r.Rating,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}
