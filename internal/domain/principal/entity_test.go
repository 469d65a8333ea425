//go:build unit

package principal_test

import (
	"strings"
	"testing"
	"time"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueObjects(t *testing.T) {
	tests := []struct {
		name  string
		build func() error
		errIs error
	}{
		{"email", func() error { _, err := principal.NewEmail(" guest@example.com "); return err }, nil},
		{"email without domain", func() error { _, err := principal.NewEmail("guest@"); return err }, principal.ErrInvalidEmail},
		{"password at minimum", func() error { _, err := principal.NewPassword("12345678"); return err }, nil},
		{"password too short", func() error { _, err := principal.NewPassword("1234567"); return err }, principal.ErrPasswordTooWeak},
		{"blank name", func() error { _, err := principal.NewName("   "); return err }, principal.ErrInvalidName},
		{"name too long", func() error { _, err := principal.NewName(strings.Repeat("x", principal.MaxNameLength+1)); return err }, principal.ErrInvalidName},
		{"phone", func() error { _, err := principal.NewPhoneNumber("+82 10-1234-5678"); return err }, nil},
		{"phone with letters", func() error { _, err := principal.NewPhoneNumber("call me"); return err }, principal.ErrInvalidPhoneNumber},
		{"credentials", func() error { _, err := principal.NewCredentials("a@b.co", "short"); return err }, principal.ErrPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewPrincipal(t *testing.T) {
	email, _ := principal.NewEmail("owner@example.com")
	name, _ := principal.NewName("Owner Lee")
	phone, _ := principal.NewPhoneNumber("010-9876-5432")
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	p, err := principal.NewPrincipal(principal.RoleManager, email, "hash", name, phone, now)
	require.NoError(t, err)
	assert.Equal(t, principal.RoleManager, p.Role())
	assert.Equal(t, "owner@example.com", p.Email().Value())

	_, err = principal.NewPrincipal(principal.Role("ADMIN"), email, "hash", name, phone, now)
	require.ErrorIs(t, err, principal.ErrInvalidRole)
}

func TestMatchesContact(t *testing.T) {
	p := builder.NewCustomerBuilder().BuildDomain()

	assert.True(t, p.MatchesContact("Guest Kim", "010-1234-5678"))
	assert.False(t, p.MatchesContact("guest kim", "010-1234-5678"))
	assert.False(t, p.MatchesContact("Guest Kim ", "010-1234-5678"))
	assert.False(t, p.MatchesContact("Guest Kim", "01012345678"))
}

func TestRequireRole(t *testing.T) {
	customer := builder.NewCustomerBuilder().BuildDomain()

	require.NoError(t, principal.RequireRole(customer, principal.RoleCustomer))

	err := principal.RequireRole(customer, principal.RoleManager)
	require.ErrorIs(t, err, principal.ErrForbidden)
	assert.True(t, errs.Is(err, errs.ErrAuthorization))

	require.ErrorIs(t, principal.RequireRole(nil, principal.RoleCustomer), principal.ErrForbidden)
}
