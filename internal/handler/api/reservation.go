package api

import (
	"net/http"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/domain/reservation"
	reqdto "restaurant-reservation/internal/handler/dto/request"
	resdto "restaurant-reservation/internal/handler/dto/response"
	"restaurant-reservation/internal/handler/httperr"
	"restaurant-reservation/internal/usecase/commands"
	"restaurant-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a table; the reservation starts PENDING
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Create reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	h.render(c, http.StatusCreated, actor, id)
}

// @Summary Accept reservation
// @Description Restaurant manager accepts a pending reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/accept [patch]
func (h *ReservationHandler) Accept(c *gin.Context) {
	h.decide(c, reservation.DecisionAccept)
}

// @Summary Refuse reservation
// @Description Restaurant manager refuses a pending reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/refuse [patch]
func (h *ReservationHandler) Refuse(c *gin.Context) {
	h.decide(c, reservation.DecisionRefuse)
}

// @Summary Confirm visit
// @Description Customer confirms the visit with the name and phone number on their account
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.VisitRequest true "Visit form"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/visit [post]
func (h *ReservationHandler) Visit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.cmds.ConfirmVisit(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}

	h.render(c, http.StatusOK, actor, id)
}

// @Summary Get reservation
// @Description Visible to the reservation's customer and the restaurant's manager
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, actor, id)
}

// @Summary My reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	views, err := h.q.ListForCustomer(c.Request.Context(), actor)
	h.renderList(c, views, err)
}

// @Summary Restaurant reservations
// @Description Reservations of a restaurant, for its manager only
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/reservations [get]
func (h *ReservationHandler) ListForRestaurant(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	views, err := h.q.ListForRestaurant(c.Request.Context(), actor, restaurantID)
	h.renderList(c, views, err)
}

func (h *ReservationHandler) decide(c *gin.Context, d reservation.Decision) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	if err := h.cmds.AcceptOrRefuse(c.Request.Context(), actor, id, d); err != nil {
		httperr.Abort(c, err)
		return
	}

	h.render(c, http.StatusOK, actor, id)
}

func (h *ReservationHandler) render(c *gin.Context, status int, actor *principal.Principal, id int64) {
	view, err := h.q.Get(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *ReservationHandler) renderList(c *gin.Context, views []*queries.ReservationView, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
