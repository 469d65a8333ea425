//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"restaurant-reservation/internal/handler/dto/request"
	"restaurant-reservation/internal/handler/dto/response"
	"restaurant-reservation/tests/common/authtest"
	"restaurant-reservation/tests/common/dbtest"
	"restaurant-reservation/tests/common/httptest"
	"restaurant-reservation/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	customerName  = "Guest Kim"
	customerPhone = "010-1234-5678"
)

type lifecycleSuite struct {
	e2e.SharedSuite
}

func TestLifecycleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(lifecycleSuite))
}

type actors struct {
	customerToken     string
	ownerToken        string
	otherManagerToken string
	restaurantID      int64
}

func (s *lifecycleSuite) setupActors() actors {
	t := s.T()
	_, customerToken := authtest.CreateCustomerAndSignIn(t, s.DB, s.Router, "guest@example.com", customerName, customerPhone)
	_, ownerToken := authtest.CreateManagerAndSignIn(t, s.DB, s.Router, "owner@example.com")
	_, otherToken := authtest.CreateManagerAndSignIn(t, s.DB, s.Router, "other@example.com")

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/restaurants",
		request.RegisterRestaurantRequest{Name: "Bistro", Location: "Seoul"}, ownerToken)
	var restaurant response.RestaurantResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &restaurant)

	return actors{
		customerToken:     customerToken,
		ownerToken:        ownerToken,
		otherManagerToken: otherToken,
		restaurantID:      restaurant.ID,
	}
}

func (s *lifecycleSuite) book(a actors) response.ReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations",
		request.CreateReservationRequest{
			RestaurantID:    a.restaurantID,
			PeopleCount:     4,
			ReservationTime: time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second),
		}, a.customerToken)
	var res response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func reservationURL(id int64, action string) string {
	if action == "" {
		return fmt.Sprintf("/api/reservations/%d", id)
	}
	return fmt.Sprintf("/api/reservations/%d/%s", id, action)
}

func (s *lifecycleSuite) TestAcceptVisitReview() {
	s.Run("full happy path with guards", func() {
		t := s.T()
		a := s.setupActors()

		created := s.book(a)
		require.Equal(t, "PENDING", created.Status)
		require.False(t, created.Visited)
		require.Equal(t, customerName, created.CustomerName)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL(created.ID, "accept"), nil, a.otherManagerToken)
		httptest.AssertErrorCode(t, w, http.StatusForbidden, "NOT_RESTAURANT_MANAGER")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL(created.ID, "accept"), nil, a.ownerToken)
		var accepted response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &accepted)
		require.Equal(t, "ACCEPTED", accepted.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL(created.ID, "refuse"), nil, a.ownerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "RESERVATION_ALREADY_PROCESSED")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationURL(created.ID, "visit"),
			request.VisitRequest{Name: "Someone Else", PhoneNumber: customerPhone}, a.customerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "CUSTOMER_MISMATCH")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationURL(created.ID, "visit"),
			request.VisitRequest{Name: customerName, PhoneNumber: customerPhone}, a.customerToken)
		var visited response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &visited)
		require.Equal(t, "COMPLETED", visited.Status)
		require.True(t, visited.Visited)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationURL(created.ID, "visit"),
			request.VisitRequest{Name: customerName, PhoneNumber: customerPhone}, a.customerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "RESERVATION_ALREADY_VISITED")

		review := request.CreateReviewRequest{Title: "Lovely", Comment: "Great pasta", Rating: 5}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationURL(created.ID, "reviews"), review, a.customerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationURL(created.ID, "reviews"), review, a.customerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "REVIEW_ALREADY_EXISTS")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("/api/restaurants/%d/reviews", a.restaurantID), nil, a.ownerToken)
		var reviews []response.ReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reviews)
		require.Len(t, reviews, 1)
		require.Equal(t, int32(5), reviews[0].Rating)

		require.Equal(t, 1, dbtest.CountEvents(t, s.DB, created.ID, "reservation.created"))
		require.Equal(t, 1, dbtest.CountEvents(t, s.DB, created.ID, "reservation.accepted"))
		require.Equal(t, 1, dbtest.CountEvents(t, s.DB, created.ID, "reservation.completed"))
	})
}

func (s *lifecycleSuite) TestRefuse() {
	s.Run("refused reservation cannot be visited", func() {
		t := s.T()
		a := s.setupActors()
		created := s.book(a)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL(created.ID, "refuse"), nil, a.ownerToken)
		var refused response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &refused)
		require.Equal(t, "CANCELLED", refused.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationURL(created.ID, "visit"),
			request.VisitRequest{Name: customerName, PhoneNumber: customerPhone}, a.customerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "RESERVATION_ALREADY_CANCELED")

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL(created.ID, "accept"), nil, a.ownerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "RESERVATION_ALREADY_CANCELED")
	})

	s.Run("visit before acceptance", func() {
		t := s.T()
		a := s.setupActors()
		created := s.book(a)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationURL(created.ID, "visit"),
			request.VisitRequest{Name: customerName, PhoneNumber: customerPhone}, a.customerToken)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "RESERVATION_NOT_YET_PROCESSED")
	})
}

func (s *lifecycleSuite) TestVisibility() {
	s.Run("lists are scoped to their owners", func() {
		t := s.T()
		a := s.setupActors()
		created := s.book(a)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reservations", nil, a.customerToken)
		var mine []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &mine)
		require.Len(t, mine, 1)
		require.Equal(t, created.ID, mine[0].ID)

		url := fmt.Sprintf("/api/restaurants/%d/reservations", a.restaurantID)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, a.ownerToken)
		var forRestaurant []response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &forRestaurant)
		require.Len(t, forRestaurant, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, a.otherManagerToken)
		httptest.AssertErrorCode(t, w, http.StatusForbidden, "NOT_RESTAURANT_MANAGER")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationURL(created.ID, ""), nil, a.otherManagerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("past reservation time is rejected", func() {
		t := s.T()
		a := s.setupActors()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/reservations",
			request.CreateReservationRequest{
				RestaurantID:    a.restaurantID,
				PeopleCount:     2,
				ReservationTime: time.Now().Add(-time.Hour).UTC(),
			}, a.customerToken)
		httptest.AssertErrorCode(t, w, http.StatusUnprocessableEntity, "RESERVATION_TIME_NOT_FUTURE")
	})
}

func (s *lifecycleSuite) TestExpirySweep() {
	s.Run("overdue accepted reservations are cancelled once", func() {
		t := s.T()
		customerID := dbtest.CreateCustomer(t, s.DB, "guest@example.com", customerName, customerPhone)
		managerID := dbtest.CreateManager(t, s.DB, "owner@example.com", "Owner Lee", "010-9876-5432")
		restaurantID := dbtest.CreateRestaurant(t, s.DB, managerID, "Bistro")

		overdue := dbtest.CreateReservation(t, s.DB, customerID, restaurantID, managerID, "ACCEPTED", time.Now().Add(-time.Hour))
		upcoming := dbtest.CreateReservation(t, s.DB, customerID, restaurantID, managerID, "ACCEPTED", time.Now().Add(3*time.Minute))
		pending := dbtest.CreateReservation(t, s.DB, customerID, restaurantID, managerID, "PENDING", time.Now().Add(-time.Hour))

		result, err := s.Sweeper.Sweep(t.Context())
		require.NoError(t, err)
		require.Equal(t, 2, result.Scanned)
		require.Equal(t, 1, result.Cancelled)
		require.Equal(t, 1, result.Skipped)

		require.Equal(t, "CANCELLED", dbtest.ReservationStatus(t, s.DB, overdue))
		require.Equal(t, "ACCEPTED", dbtest.ReservationStatus(t, s.DB, upcoming))
		require.Equal(t, "PENDING", dbtest.ReservationStatus(t, s.DB, pending))
		require.Equal(t, 1, dbtest.CountEvents(t, s.DB, overdue, "reservation.expired"))

		again, err := s.Sweeper.Sweep(t.Context())
		require.NoError(t, err)
		require.Zero(t, again.Cancelled)
		require.Equal(t, 1, dbtest.CountEvents(t, s.DB, overdue, "reservation.expired"))
	})
}
