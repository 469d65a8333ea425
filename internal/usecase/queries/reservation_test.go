//go:build unit

package queries_test

import (
	"context"
	"testing"

	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/queries"
	"restaurant-reservation/internal/usecase/shared"
	"restaurant-reservation/tests/common/builder"
	queriesmock "restaurant-reservation/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	reservations *queriesmock.MockReservationReadStore
	restaurants  *queriesmock.MockRestaurantReadStore
	queries      queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.reservations = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.restaurants = queriesmock.NewMockRestaurantReadStore(s.mockCtrl)
	s.queries = queries.NewReservationQueries(s.reservations, s.restaurants)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	customer := builder.NewCustomerBuilder().BuildDomain()
	manager := builder.NewManagerBuilder().BuildDomain()

	s.Run("the reservation's customer sees it", func() {
		s.reservations.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.queries.Get(s.ctx, customer, view.ID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("another customer is refused", func() {
		other := builder.NewCustomerBuilder().With(func(b *builder.PrincipalBuilder) { b.ID = 99 }).BuildDomain()
		s.reservations.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		_, err := s.queries.Get(s.ctx, other, view.ID)
		s.True(errs.Is(err, shared.ErrNotReservationCustomer))
		s.True(errs.Is(err, errs.ErrAuthorization))
	})

	s.Run("the owning manager sees it", func() {
		s.reservations.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.restaurants.EXPECT().FindByID(gomock.Any(), view.RestaurantID).Return(builder.NewRestaurantBuilder().BuildView(), nil)

		got, err := s.queries.Get(s.ctx, manager, view.ID)
		s.Require().NoError(err)
		s.Equal(view.ID, got.ID)
	})

	s.Run("a manager of another restaurant is refused", func() {
		other := builder.NewManagerBuilder().With(func(b *builder.PrincipalBuilder) { b.ID = 77 }).BuildDomain()
		s.reservations.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)
		s.restaurants.EXPECT().FindByID(gomock.Any(), view.RestaurantID).Return(builder.NewRestaurantBuilder().BuildView(), nil)

		_, err := s.queries.Get(s.ctx, other, view.ID)
		s.True(errs.Is(err, shared.ErrNotRestaurantManager))
		s.True(errs.Is(err, errs.ErrAuthorization))
	})

	s.Run("missing reservation is not found", func() {
		s.reservations.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows))

		_, err := s.queries.Get(s.ctx, customer, 404)
		s.True(errs.Is(err, shared.ErrReservationNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("anonymous caller is refused without a lookup", func() {
		_, err := s.queries.Get(s.ctx, nil, view.ID)
		s.True(errs.Is(err, errs.ErrAuthorization))
	})
}

func (s *ReservationQueriesTestSuite) TestListForRestaurant() {
	manager := builder.NewManagerBuilder().BuildDomain()
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().BuildView(),
		builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.ID = 101 }).BuildView(),
	}

	s.Run("owning manager lists reservations", func() {
		s.restaurants.EXPECT().FindByID(gomock.Any(), int64(10)).Return(builder.NewRestaurantBuilder().BuildView(), nil)
		s.reservations.EXPECT().ListByRestaurant(gomock.Any(), int64(10)).Return(views, nil)

		got, err := s.queries.ListForRestaurant(s.ctx, manager, 10)
		s.Require().NoError(err)
		s.Len(got, 2)
	})

	s.Run("customer is refused before any lookup", func() {
		_, err := s.queries.ListForRestaurant(s.ctx, builder.NewCustomerBuilder().BuildDomain(), 10)
		s.True(errs.Is(err, errs.ErrAuthorization))
	})

	s.Run("unknown restaurant is not found", func() {
		s.restaurants.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("restaurant not found", pgx.ErrNoRows))

		_, err := s.queries.ListForRestaurant(s.ctx, manager, 404)
		s.True(errs.Is(err, shared.ErrRestaurantNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *ReservationQueriesTestSuite) TestListForCustomer() {
	customer := builder.NewCustomerBuilder().BuildDomain()

	s.Run("lists own reservations", func() {
		s.reservations.EXPECT().ListByCustomer(gomock.Any(), customer.ID()).
			Return([]*queries.ReservationView{builder.NewReservationBuilder().BuildView()}, nil)

		got, err := s.queries.ListForCustomer(s.ctx, customer)
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("manager is refused", func() {
		_, err := s.queries.ListForCustomer(s.ctx, builder.NewManagerBuilder().BuildDomain())
		s.True(errs.Is(err, errs.ErrAuthorization))
	})
}
