//go:build unit

package infra_test

import (
	"fmt"
	"testing"

	"restaurant-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other failure", err: fmt.Errorf("connection reset"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
		{name: "nil cause with kind", err: nil, kind: []infra.RepositoryErrorKind{infra.KindConflict}, want: infra.KindConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to do thing", tc.err, tc.kind...)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.want))
			assert.Contains(t, err.Error(), "failed to do thing")

			wrapped := fmt.Errorf("outer: %w", err)
			assert.True(t, infra.IsKind(wrapped, tc.want))
		})
	}

	t.Run("cause stays reachable", func(t *testing.T) {
		err := infra.WrapRepoErr("lookup", pgx.ErrNoRows)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
