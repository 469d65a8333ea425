package api

import (
	"strconv"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/handler/httperr"
	"restaurant-reservation/internal/handler/middleware"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.New(name + " must be a positive integer")
		}
		httperr.AbortBadRequest(c, err, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// currentPrincipal aborts with 401 when the route was mounted without RequireAuth.
func currentPrincipal(c *gin.Context) (*principal.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.Abort(c, errs.Mark(usecase.ErrMissingToken, errs.ErrAuthentication))
		return nil, false
	}
	return p, true
}
