package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"restaurant-reservation/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows the Authorization header, which bearer clients need on every protected route.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	headers := slices.Clone(cfg.AllowHeaders)
	if !slices.ContainsFunc(headers, func(h string) bool { return strings.EqualFold(h, "Authorization") }) {
		headers = append(headers, "Authorization")
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     headers,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", cfg.AllowCredentials,
	)
	return cors.New(corsCfg)
}
