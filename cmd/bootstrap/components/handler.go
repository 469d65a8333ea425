package components

import (
	"restaurant-reservation/internal/handler"
	"restaurant-reservation/internal/handler/api"
	"restaurant-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRestaurantHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	restaurant *api.RestaurantHandler,
	reservation *api.ReservationHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Restaurant:  restaurant,
		Reservation: reservation,
		Review:      review,
	}
}
