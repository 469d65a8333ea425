//go:build unit

package uow_test

import (
	"context"
	"errors"
	"testing"

	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/infra/uow"
	"restaurant-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var readCommitted = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

func newUoW(t *testing.T) (*uow.PostgresUoW, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return uow.NewPostgresUoW(mock, sqlc.New()), mock
}

func TestPostgresUoW_Within(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		u, mock := newUoW(t)
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectCommit()

		err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			assert.Same(t, tx.Reservations(), tx.Reservations())
			assert.NotNil(t, tx.Principals())
			assert.NotNil(t, tx.Outbox())
			return nil
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the fn error", func(t *testing.T) {
		u, mock := newUoW(t)
		boom := errors.New("domain rule broken")
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectRollback()

		calls := 0
		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries a serialization failure", func(t *testing.T) {
		u, mock := newUoW(t)
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectRollback()
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectCommit()

		calls := 0
		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			if calls == 1 {
				return &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("does not retry a constraint violation", func(t *testing.T) {
		u, mock := newUoW(t)
		mock.ExpectBeginTx(readCommitted)
		mock.ExpectRollback()

		calls := 0
		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			return &pgconn.PgError{Code: "23505"}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure is returned", func(t *testing.T) {
		u, mock := newUoW(t)
		mock.ExpectBeginTx(readCommitted).WillReturnError(errors.New("pool exhausted"))

		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pool exhausted")
	})
}

func TestPostgresUoW_WithinReadOnly(t *testing.T) {
	u, mock := newUoW(t)
	boom := errors.New("read failed")
	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadOnly})
	mock.ExpectRollback()

	err := u.WithinReadOnly(context.Background(), func(context.Context, shared.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
