package bootstrap

import (
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/config"
	"restaurant-reservation/internal/pkg/jwt"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(commands.TokenIssuer)),
			fx.As(new(usecase.TokenVerifier)),
		),
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	return jwt.NewService(jwt.Config{
		Secret: cfg.JWT.Secret,
		TTL:    cfg.JWT.TTL,
	}, clk)
}
