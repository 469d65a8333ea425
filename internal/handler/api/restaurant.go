package api

import (
	"net/http"

	reqdto "restaurant-reservation/internal/handler/dto/request"
	resdto "restaurant-reservation/internal/handler/dto/response"
	"restaurant-reservation/internal/handler/httperr"
	"restaurant-reservation/internal/usecase/commands"
	"restaurant-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	cmds commands.RestaurantCommands
	q    queries.RestaurantQueries
}

func NewRestaurantHandler(cmds commands.RestaurantCommands, q queries.RestaurantQueries) *RestaurantHandler {
	return &RestaurantHandler{cmds: cmds, q: q}
}

// @Summary Register restaurant
// @Description Register a restaurant managed by the calling manager
// @Tags restaurants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterRestaurantRequest true "Register restaurant request"
// @Success 201 {object} resdto.RestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /restaurants [post]
func (h *RestaurantHandler) Register(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.RegisterRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.cmds.Register(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.render(c, http.StatusCreated, id)
}

// @Summary Get restaurant
// @Description Get a restaurant by ID
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} resdto.RestaurantResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id} [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.render(c, http.StatusOK, id)
}

// @Summary List restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {array} resdto.RestaurantResponse
// @Router /restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRestaurantViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *RestaurantHandler) render(c *gin.Context, status int, id int64) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromRestaurantView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
