package components

import (
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/password"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/internal/usecase/commands"
	"restaurant-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewDefaultHasher,
		fx.As(new(commands.PasswordHasher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRestaurantCommands,
		commands.NewReservationCommands,
		commands.NewReviewCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRestaurantQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewPrincipalResolver,
	),
)
