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

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a completed reservation; one review per reservation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	reservationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actor, reservationID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update review
// @Description Author edits a review; omitted fields are kept
// @Tags reviews
// @Accept json
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actor, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete review
// @Description Author or the restaurant's manager deletes a review
// @Tags reviews
// @Security BearerAuth
// @Param id path int true "Review ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Restaurant reviews
// @Description Reviews of a restaurant, for its manager
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Restaurant ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /restaurants/{id}/reviews [get]
func (h *ReviewHandler) ListForRestaurant(c *gin.Context) {
	restaurantID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := currentPrincipal(c)
	if !ok {
		return
	}

	views, err := h.q.ListForRestaurant(c.Request.Context(), actor, restaurantID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromReviewViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
