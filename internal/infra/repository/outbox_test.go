//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"

	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/infra/repository"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOutboxRepo(t *testing.T) (*repository.OutboxRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return repository.NewOutboxRepository(sqlc.New(), mock), mock
}

func TestOutboxRepository_Enqueue(t *testing.T) {
	repo, mock := newOutboxRepo(t)

	res := reservation.Reconstruct(11, 7, 3, 2, 4, slotTime, reservation.StatusAccepted, false, baseTime, baseTime)
	event := reservation.NewEvent(reservation.EventAccepted, res, baseTime)
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO reservation_events").
		WithArgs(int64(11), "reservation.accepted", payload, baseTime).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

	require.NoError(t, repo.Enqueue(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_FetchAndMark(t *testing.T) {
	ctx := context.Background()
	repo, mock := newOutboxRepo(t)

	mock.ExpectQuery("FOR UPDATE SKIP LOCKED").
		WithArgs(int32(50)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "reservation_id", "event_type", "payload", "created_at", "published_at"}).
			AddRow(int64(1), int64(11), "reservation.created", []byte(`{}`), baseTime, pgtype.Timestamptz{}).
			AddRow(int64(2), int64(12), "reservation.expired", []byte(`{}`), baseTime, pgtype.Timestamptz{}))
	mock.ExpectExec("UPDATE reservation_events").
		WithArgs(pgconv.TimeToPgtype(slotTime), []int64{1, 2}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	messages, err := repo.FetchPending(ctx, 50)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "reservation.created", messages[0].EventType)
	assert.Equal(t, int64(12), messages[1].ReservationID)

	require.NoError(t, repo.MarkPublished(ctx, []int64{1, 2}, slotTime))
	assert.NoError(t, mock.ExpectationsWereMet())

	t.Run("empty id list is a no-op", func(t *testing.T) {
		require.NoError(t, repo.MarkPublished(ctx, nil, slotTime))
	})
}
