//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-reservation/internal/domain/review"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/infra/repository"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewRepo(t *testing.T) (*repository.ReviewRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return repository.NewReviewRepository(sqlc.New(), mock), mock
}

func storedReview() *review.Review {
	return review.Reconstruct(5, 7, 3, 11, "Lovely", "Great pasta", 4, baseTime, baseTime)
}

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(pgxmock.PgxPoolIface)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: review created",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO reviews").
					WithArgs(int64(7), int64(3), int64(11), "Lovely", "Great pasta", int32(4), baseTime).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO reviews").
					WithArgs(int64(7), int64(3), int64(11), "Lovely", "Great pasta", int32(4), baseTime).
					WillReturnError(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: duplicate review for reservation",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO reviews").
					WithArgs(int64(7), int64(3), int64(11), "Lovely", "Great pasta", int32(4), baseTime).
					WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
			},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newReviewRepo(t)
			tc.setupMock(mock)

			rev := review.Reconstruct(0, 7, 3, 11, "Lovely", "Great pasta", 4, baseTime, baseTime)
			id, err := repo.Create(ctx, rev)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(5), id)
				assert.Equal(t, int64(5), rev.ID())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		run        func(*repository.ReviewRepository) error
		setupMock  func(pgxmock.PgxPoolIface)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: review updated",
			run:  func(r *repository.ReviewRepository) error { return r.Update(ctx, storedReview()) },
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE reviews").
					WithArgs(int64(5), "Lovely", "Great pasta", int32(4), baseTime).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "error: update of missing review",
			run:  func(r *repository.ReviewRepository) error { return r.Update(ctx, storedReview()) },
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("UPDATE reviews").
					WithArgs(int64(5), "Lovely", "Great pasta", int32(4), baseTime).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "success: review deleted",
			run:  func(r *repository.ReviewRepository) error { return r.Delete(ctx, 5) },
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("DELETE FROM reviews").WithArgs(int64(5)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			name: "error: delete of missing review",
			run:  func(r *repository.ReviewRepository) error { return r.Delete(ctx, 5) },
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("DELETE FROM reviews").WithArgs(int64(5)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: delete fails",
			run:  func(r *repository.ReviewRepository) error { return r.Delete(ctx, 5) },
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec("DELETE FROM reviews").WithArgs(int64(5)).WillReturnError(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newReviewRepo(t)
			tc.setupMock(mock)

			err := tc.run(repo)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_ExistsForReservation(t *testing.T) {
	repo, mock := newReviewRepo(t)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForReservation(context.Background(), 11)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
