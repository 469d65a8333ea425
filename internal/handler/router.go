package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/handler/api"
	"restaurant-reservation/internal/handler/middleware"
	"restaurant-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Restaurant  *api.RestaurantHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customerOnly := []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleCustomer)}
	managerOnly := []gin.HandlerFunc{authMiddleware.RequireRole(principal.RoleManager)}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/customers/signup", Handler: h.Auth.CustomerSignUp},
			{Method: http.MethodPost, Path: "/customers/signin", Handler: h.Auth.CustomerSignIn},
			{Method: http.MethodPost, Path: "/managers/signup", Handler: h.Auth.ManagerSignUp},
			{Method: http.MethodPost, Path: "/managers/signin", Handler: h.Auth.ManagerSignIn},
			{Method: http.MethodGet, Path: "/restaurants", Handler: h.Restaurant.List},
			{Method: http.MethodGet, Path: "/restaurants/:id", Handler: h.Restaurant.Get},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},

			{Method: http.MethodPost, Path: "/restaurants", Handler: h.Restaurant.Register, Mw: managerOnly},
			{Method: http.MethodGet, Path: "/restaurants/:id/reservations", Handler: h.Reservation.ListForRestaurant, Mw: managerOnly},
			{Method: http.MethodGet, Path: "/restaurants/:id/reviews", Handler: h.Review.ListForRestaurant, Mw: managerOnly},

			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.Create, Mw: customerOnly},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListMine, Mw: customerOnly},
			{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
			{Method: http.MethodPatch, Path: "/reservations/:id/accept", Handler: h.Reservation.Accept, Mw: managerOnly},
			{Method: http.MethodPatch, Path: "/reservations/:id/refuse", Handler: h.Reservation.Refuse, Mw: managerOnly},
			{Method: http.MethodPost, Path: "/reservations/:id/visit", Handler: h.Reservation.Visit, Mw: customerOnly},
			{Method: http.MethodPost, Path: "/reservations/:id/reviews", Handler: h.Review.Create, Mw: customerOnly},

			{Method: http.MethodPatch, Path: "/reviews/:id", Handler: h.Review.Update, Mw: customerOnly},
			{Method: http.MethodDelete, Path: "/reviews/:id", Handler: h.Review.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
