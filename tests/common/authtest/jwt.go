//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/config"
	"restaurant-reservation/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, id int64, email string, role principal.Role) string {
	t.Helper()
	return h.issueAt(t, time.Now(), id, email, role)
}

// CreateExpiredToken signs a token whose lifetime ended before now.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, id int64, email string, role principal.Role) string {
	t.Helper()
	return h.issueAt(t, time.Now().Add(-2*h.ttl()), id, email, role)
}

func (h *JWTHelper) issueAt(t *testing.T, at time.Time, id int64, email string, role principal.Role) string {
	t.Helper()
	service, err := jwt.NewService(jwt.Config{Secret: h.cfg.Secret, TTL: h.ttl()}, clock.NewMockClock(at))
	require.NoError(t, err)
	token, err := service.Issue(id, email, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ttl() time.Duration {
	if h.cfg.TTL <= 0 {
		return time.Hour
	}
	return h.cfg.TTL
}
