package repository

import (
	"context"

	"restaurant-reservation/internal/domain/review"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/infra/repository/converter"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (int64, error)
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reviews, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	ReviewExistsForReservation(ctx context.Context, db sqlc.DBTX, reservationID int64) (bool, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (int64, error) {
	id, err := r.queries.CreateReview(ctx, r.db, converter.ReviewToCreateParams(rev))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	rev.AssignID(id)
	return id, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*review.Review, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review by id", err)
	}
	return converter.ReviewFromRow(row), nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	affected, err := r.queries.UpdateReview(ctx, r.db, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("review not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteReview(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("review not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *ReviewRepository) ExistsForReservation(ctx context.Context, reservationID int64) (bool, error) {
	exists, err := r.queries.ReviewExistsForReservation(ctx, r.db, reservationID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return exists, nil
}
