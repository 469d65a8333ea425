//go:build unit

package api_test

import (
	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// asPrincipal stands in for RequireAuth; a nil principal leaves the request anonymous.
func asPrincipal(p *principal.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p != nil {
			middleware.SetPrincipal(c, p)
		}
		c.Next()
	}
}

func newEngine(p *principal.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(asPrincipal(p))
	return r
}
