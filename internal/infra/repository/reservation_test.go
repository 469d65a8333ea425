//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/infra/repository"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reservationColumns = []string{
	"id", "customer_id", "restaurant_id", "manager_id", "people_count",
	"reservation_time", "status", "visited", "created_at", "updated_at",
}

var (
	baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	slotTime = baseTime.Add(30 * time.Minute)
)

func newReservationRepo(t *testing.T) (*repository.ReservationRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return repository.NewReservationRepository(sqlc.New(), mock), mock
}

func TestReservationRepository_SaveNew(t *testing.T) {
	ctx := context.Background()
	count, err := reservation.NewPeopleCount(4)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		setupMock  func(pgxmock.PgxPoolIface)
		wantID     int64
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: inserted as pending and id assigned",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO reservations").
					WithArgs(int64(7), int64(3), int64(2), int32(4), slotTime, "PENDING", false, baseTime).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
			},
			wantID: 11,
		},
		{
			name: "error: restaurant row vanished",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO reservations").
					WithArgs(int64(7), int64(3), int64(2), int32(4), slotTime, "PENDING", false, baseTime).
					WillReturnError(fkViolation())
			},
			expectKind: infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newReservationRepo(t)
			tc.setupMock(mock)

			res, err := reservation.NewReservation(7, reservation.RestaurantRef{ID: 3, ManagerID: 2}, count, slotTime, baseTime)
			require.NoError(t, err)

			err = repo.Save(ctx, res)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.True(t, res.IsNew())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, res.ID())
				assert.Equal(t, reservation.StatusPending, res.PersistedStatus())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReservationRepository_SaveTransition(t *testing.T) {
	ctx := context.Background()
	decidedAt := baseTime.Add(time.Minute)

	testCases := []struct {
		name       string
		affected   int64
		execErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: guarded update matched", affected: 1},
		{name: "error: status changed concurrently", affected: 0, expectKind: infra.KindConflict},
		{name: "error: database failure", execErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newReservationRepo(t)

			res := reservation.Reconstruct(11, 7, 3, 2, 4, slotTime, reservation.StatusPending, false, baseTime, baseTime)
			require.NoError(t, res.Decide(reservation.DecisionAccept, decidedAt))

			exp := mock.ExpectExec("UPDATE reservations").
				WithArgs(int64(11), "ACCEPTED", false, decidedAt, "PENDING")
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("UPDATE", tc.affected))
			}

			err := repo.Save(ctx, res)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Equal(t, reservation.StatusPending, res.PersistedStatus())
			} else {
				require.NoError(t, err)
				assert.Equal(t, reservation.StatusAccepted, res.PersistedStatus())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReservationRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row is locked and reconstructed", func(t *testing.T) {
		repo, mock := newReservationRepo(t)
		mock.ExpectQuery(`FROM reservations\s+WHERE id = \$1\s+FOR UPDATE`).
			WithArgs(int64(11)).
			WillReturnRows(pgxmock.NewRows(reservationColumns).
				AddRow(int64(11), int64(7), int64(3), int64(2), int32(4), slotTime, "ACCEPTED", false, baseTime, baseTime))

		res, err := repo.FindByIDForUpdate(ctx, 11)
		require.NoError(t, err)
		assert.Equal(t, int64(11), res.ID())
		assert.Equal(t, reservation.StatusAccepted, res.Status())
		assert.Equal(t, reservation.StatusAccepted, res.PersistedStatus())
		assert.Equal(t, 4, res.PeopleCount().Value())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: missing row is not found", func(t *testing.T) {
		repo, mock := newReservationRepo(t)
		mock.ExpectQuery("FOR UPDATE").WithArgs(int64(99)).WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByIDForUpdate(ctx, 99)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown stored status", func(t *testing.T) {
		repo, mock := newReservationRepo(t)
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int64(11)).
			WillReturnRows(pgxmock.NewRows(reservationColumns).
				AddRow(int64(11), int64(7), int64(3), int64(2), int32(4), slotTime, "LOST", false, baseTime, baseTime))

		_, err := repo.FindByIDForUpdate(ctx, 11)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationRepository_FindAccepted(t *testing.T) {
	ctx := context.Background()
	repo, mock := newReservationRepo(t)
	cutoff := baseTime.Add(10 * time.Minute)

	mock.ExpectQuery(`WHERE status = 'ACCEPTED' AND visited = FALSE AND reservation_time <= \$1`).
		WithArgs(cutoff).
		WillReturnRows(pgxmock.NewRows(reservationColumns).
			AddRow(int64(1), int64(7), int64(3), int64(2), int32(2), baseTime.Add(-time.Hour), "ACCEPTED", false, baseTime, baseTime).
			AddRow(int64(2), int64(8), int64(3), int64(2), int32(3), baseTime.Add(5*time.Minute), "ACCEPTED", false, baseTime, baseTime))

	got, err := repo.FindAccepted(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID())
	assert.Equal(t, int64(2), got[1].ID())
	assert.NoError(t, mock.ExpectationsWereMet())
}
