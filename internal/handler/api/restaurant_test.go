//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"restaurant-reservation/internal/domain/restaurant"
	"restaurant-reservation/internal/handler/api"
	resdto "restaurant-reservation/internal/handler/dto/response"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/queries"
	"restaurant-reservation/internal/usecase/shared"
	"restaurant-reservation/tests/common/builder"
	"restaurant-reservation/tests/common/httptest"
	commandsmock "restaurant-reservation/tests/mock/commands"
	queriesmock "restaurant-reservation/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRestaurantHandler(t *testing.T) (*commandsmock.MockRestaurantCommands, *queriesmock.MockRestaurantQueries, *api.RestaurantHandler) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockRestaurantCommands(ctrl)
	q := queriesmock.NewMockRestaurantQueries(ctrl)
	return cmds, q, api.NewRestaurantHandler(cmds, q)
}

func TestRestaurantHandler_Register(t *testing.T) {
	manager := builder.NewManagerBuilder().BuildDomain()
	b := builder.NewRestaurantBuilder()

	t.Run("registered and rendered", func(t *testing.T) {
		cmds, q, h := setupRestaurantHandler(t)
		cmds.EXPECT().Register(gomock.Any(), manager, gomock.Any()).Return(b.ID, nil)
		q.EXPECT().Get(gomock.Any(), b.ID).Return(b.BuildView(), nil)

		r := newEngine(manager)
		r.POST("/restaurants", h.Register)
		w := httptest.PerformRequest(t, r, http.MethodPost, "/restaurants", b.BuildRegisterDTO(), "")

		var res resdto.RestaurantResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		view := b.BuildView()
		want := resdto.RestaurantResponse{
			ID:          view.ID,
			ManagerID:   view.ManagerID,
			Name:        view.Name,
			Location:    view.Location,
			Description: view.Description,
			PhoneNumber: view.PhoneNumber,
			CreatedAt:   view.CreatedAt,
			UpdatedAt:   view.UpdatedAt,
		}
		if diff := cmp.Diff(want, res); diff != "" {
			t.Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid location from the domain", func(t *testing.T) {
		cmds, _, h := setupRestaurantHandler(t)
		cmds.EXPECT().Register(gomock.Any(), manager, gomock.Any()).
			Return(int64(0), errs.Mark(restaurant.ErrInvalidLocation, errs.ErrValidation))

		r := newEngine(manager)
		r.POST("/restaurants", h.Register)
		w := httptest.PerformRequest(t, r, http.MethodPost, "/restaurants", b.BuildRegisterDTO(), "")
		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "INVALID_RESTAURANT_LOCATION")
	})
}

func TestRestaurantHandler_Read(t *testing.T) {
	t.Run("list is public", func(t *testing.T) {
		_, q, h := setupRestaurantHandler(t)
		q.EXPECT().List(gomock.Any()).Return([]*queries.RestaurantView{builder.NewRestaurantBuilder().BuildView()}, nil)

		r := newEngine(nil)
		r.GET("/restaurants", h.List)
		w := httptest.PerformRequest(t, r, http.MethodGet, "/restaurants", nil, "")

		var res []resdto.RestaurantResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res, 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, q, h := setupRestaurantHandler(t)
		q.EXPECT().Get(gomock.Any(), int64(404)).Return(nil, errs.Mark(shared.ErrRestaurantNotFound, errs.ErrNotFound))

		r := newEngine(nil)
		r.GET("/restaurants/:id", h.Get)
		w := httptest.PerformRequest(t, r, http.MethodGet, "/restaurants/404", nil, "")
		httptest.AssertErrorCode(t, w, http.StatusNotFound, "RESTAURANT_NOT_FOUND")
	})
}
