package middleware

import (
	"log/slog"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/handler/httperr"
	"restaurant-reservation/internal/pkg/cookie"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/pkg/jwt"
	"restaurant-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	resolver usecase.PrincipalResolver
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(resolver usecase.PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
	}
}

// RequireAuth resolves the bearer token, or the access_token cookie when no header is sent.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractToken(c)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		p, err := m.resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errs.Is(err, errs.ErrAuthentication) {
				slog.Error("Principal resolution failed", "error", err)
			} else {
				slog.Warn("Token rejected in auth middleware", "error", err.Error())
			}
			httperr.Abort(c, err)
			return
		}

		c.Set(ctxPrincipalKey, p)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := GetPrincipal(c)
		if err := principal.RequireRole(p, role); err != nil {
			httperr.Abort(c, err)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		return jwt.StripPrefix(header)
	}
	if token := cookie.GetAccessToken(c); token != "" {
		return token, nil
	}
	return "", errs.Mark(usecase.ErrMissingToken, errs.ErrAuthentication)
}

func GetPrincipal(c *gin.Context) (*principal.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return nil, false
	}

	p, ok := v.(*principal.Principal)
	return p, ok && p != nil
}

// SetPrincipal stores p as the request's authenticated principal.
func SetPrincipal(c *gin.Context, p *principal.Principal) {
	c.Set(ctxPrincipalKey, p)
}
