//go:build unit

package pgconv_test

import (
	"fmt"
	"testing"
	"time"

	"restaurant-reservation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("query failed: %w", &pgconn.PgError{Code: code})
	}

	cases := []struct {
		name       string
		err        error
		noRows     bool
		unique     bool
		foreignKey bool
		check      bool
		retryable  bool
	}{
		{name: "no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), noRows: true},
		{name: "unique violation", err: wrap(pgconv.CodeUniqueViolation), unique: true},
		{name: "foreign key violation", err: wrap(pgconv.CodeForeignKeyViolation), foreignKey: true},
		{name: "check violation", err: wrap(pgconv.CodeCheckViolation), check: true},
		{name: "serialization failure", err: wrap(pgconv.CodeSerializationFailure), retryable: true},
		{name: "deadlock", err: wrap(pgconv.CodeDeadlockDetected), retryable: true},
		{name: "plain error", err: fmt.Errorf("boom")},
		{name: "nil", err: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.noRows, pgconv.IsNoRows(tc.err))
			assert.Equal(t, tc.unique, pgconv.IsUniqueViolation(tc.err))
			assert.Equal(t, tc.foreignKey, pgconv.IsForeignKeyViolation(tc.err))
			assert.Equal(t, tc.check, pgconv.IsCheckViolation(tc.err))
			assert.Equal(t, tc.retryable, pgconv.IsRetryable(tc.err))
		})
	}
}

func TestTimeConversion(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	pt := pgconv.TimeToPgtype(now)
	assert.True(t, pt.Valid)
	assert.Equal(t, now, pt.Time)

	got := pgconv.TimePtrFromPgtype(pt)
	if assert.NotNil(t, got) {
		assert.Equal(t, now, *got)
	}
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
}
