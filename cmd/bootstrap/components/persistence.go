package components

import (
	"restaurant-reservation/internal/infra/readstore"
	"restaurant-reservation/internal/infra/repository"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/infra/uow"
	"restaurant-reservation/internal/usecase"
	"restaurant-reservation/internal/usecase/queries"
	"restaurant-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Restaurant
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RestaurantViewQueries)),
		),
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewViewQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Principal lookups outside a transaction, used by the auth middleware
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PrincipalQueries)),
		),
		fx.Annotate(
			repository.NewPrincipalRepository,
			fx.As(new(usecase.PrincipalFinder)),
		),
	),
)

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *uow.PostgresUoW {
	return uow.NewPostgresUoW(pool, q)
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
