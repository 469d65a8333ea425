//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/domain/reservation"
	domreview "restaurant-reservation/internal/domain/review"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/commands"
	"restaurant-reservation/internal/usecase/shared"
	"restaurant-reservation/tests/common/builder"
	"restaurant-reservation/tests/common/fake"

	"github.com/stretchr/testify/suite"
)

type ReviewCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	now      time.Time
	uow      *fake.UnitOfWork
	commands commands.ReviewCommands

	customer     *principal.Principal
	otherGuest   *principal.Principal
	manager      *principal.Principal
	otherManager *principal.Principal
}

func (s *ReviewCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s.uow = fake.NewUnitOfWork()
	s.commands = commands.NewReviewCommands(s.uow, clock.NewMockClock(s.now))

	s.customer = s.uow.AddPrincipal(builder.NewCustomerBuilder().BuildDomain())
	s.otherGuest = s.uow.AddPrincipal(builder.NewCustomerBuilder().With(func(b *builder.PrincipalBuilder) {
		b.ID = 3
		b.Email = "other@example.com"
	}).BuildDomain())
	s.manager = s.uow.AddPrincipal(builder.NewManagerBuilder().BuildDomain())
	s.otherManager = s.uow.AddPrincipal(builder.NewManagerBuilder().With(func(b *builder.PrincipalBuilder) {
		b.ID = 4
		b.Email = "rival@example.com"
	}).BuildDomain())
	s.uow.AddRestaurant(builder.NewRestaurantBuilder().BuildDomain())
}

func TestReviewCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReviewCommandsTestSuite))
}

func (s *ReviewCommandsTestSuite) seedReservation(status reservation.Status) int64 {
	return s.uow.AddReservation(builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ID = 0
	}).WithStatus(status).BuildDomain()).ID()
}

func (s *ReviewCommandsTestSuite) seedReview() int64 {
	resID := s.seedReservation(reservation.StatusCompleted)
	return s.uow.AddReview(builder.NewReviewBuilder().With(func(b *builder.ReviewBuilder) {
		b.ID = 0
		b.ReservationID = resID
	}).BuildDomain()).ID()
}

func validReview() commands.CreateReviewInput {
	return commands.CreateReviewInput{Title: "Lovely dinner", Comment: "Excellent service!", Rating: 5}
}

func (s *ReviewCommandsTestSuite) TestCreate() {
	s.Run("success: completed reservation can be reviewed once", func() {
		resID := s.seedReservation(reservation.StatusCompleted)

		id, err := s.commands.Create(s.ctx, s.customer, resID, validReview())
		s.Require().NoError(err)

		stored := s.uow.Review(id)
		s.Require().NotNil(stored)
		s.Equal(resID, stored.ReservationID())
		s.Equal(s.customer.ID(), stored.CustomerID())
		s.Equal(int64(10), stored.RestaurantID())
		s.Equal(5, stored.Rating().Value())

		_, err = s.commands.Create(s.ctx, s.customer, resID, validReview())
		s.True(errs.Is(err, commands.ErrReviewAlreadyExists))
		s.True(errs.Is(err, errs.ErrConflict))
	})

	for _, status := range []reservation.Status{reservation.StatusPending, reservation.StatusAccepted, reservation.StatusCancelled} {
		s.Run("error: cannot review a "+status.String()+" reservation", func() {
			resID := s.seedReservation(status)
			_, err := s.commands.Create(s.ctx, s.customer, resID, validReview())
			s.True(errs.Is(err, domreview.ErrCannotReview))
			s.True(errs.Is(err, errs.ErrInvalidStateTransition))
		})
	}

	s.Run("error: not the reservation's customer", func() {
		resID := s.seedReservation(reservation.StatusCompleted)
		_, err := s.commands.Create(s.ctx, s.otherGuest, resID, validReview())
		s.True(errs.Is(err, shared.ErrNotReservationCustomer))
		s.True(errs.Is(err, errs.ErrAuthorization))
	})

	s.Run("error: manager cannot review", func() {
		resID := s.seedReservation(reservation.StatusCompleted)
		_, err := s.commands.Create(s.ctx, s.manager, resID, validReview())
		s.True(errs.Is(err, errs.ErrAuthorization))
	})

	s.Run("error: rating out of range", func() {
		resID := s.seedReservation(reservation.StatusCompleted)
		in := validReview()
		in.Rating = 6
		_, err := s.commands.Create(s.ctx, s.customer, resID, in)
		s.True(errs.Is(err, domreview.ErrInvalidRating))
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: unknown reservation", func() {
		_, err := s.commands.Create(s.ctx, s.customer, 9999, validReview())
		s.True(errs.Is(err, shared.ErrReservationNotFound))
	})
}

func (s *ReviewCommandsTestSuite) TestUpdate() {
	s.Run("success: absent fields keep their value", func() {
		id := s.seedReview()
		rating := 3
		s.Require().NoError(s.commands.Update(s.ctx, s.customer, id, commands.UpdateReviewInput{Rating: &rating}))

		stored := s.uow.Review(id)
		s.Equal(3, stored.Rating().Value())
		s.Equal("Lovely dinner", stored.Title().String())
		s.Equal("Excellent service!", stored.Comment().String())
		s.True(s.now.Equal(stored.UpdatedAt()))
	})

	s.Run("error: only the author may edit", func() {
		id := s.seedReview()
		title := "Hijacked"
		err := s.commands.Update(s.ctx, s.otherGuest, id, commands.UpdateReviewInput{Title: &title})
		s.True(errs.Is(err, commands.ErrReviewNotOwned))
		s.True(errs.Is(err, errs.ErrAuthorization))
		s.Equal("Lovely dinner", s.uow.Review(id).Title().String())
	})

	s.Run("error: blank comment", func() {
		id := s.seedReview()
		blank := "  "
		err := s.commands.Update(s.ctx, s.customer, id, commands.UpdateReviewInput{Comment: &blank})
		s.True(errs.Is(err, domreview.ErrEmptyComment))
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: unknown review", func() {
		err := s.commands.Update(s.ctx, s.customer, 9999, commands.UpdateReviewInput{})
		s.True(errs.Is(err, shared.ErrReviewNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *ReviewCommandsTestSuite) TestDelete() {
	s.Run("success: author deletes", func() {
		id := s.seedReview()
		s.Require().NoError(s.commands.Delete(s.ctx, s.customer, id))
		s.Nil(s.uow.Review(id))
	})

	s.Run("success: restaurant manager deletes", func() {
		id := s.seedReview()
		s.Require().NoError(s.commands.Delete(s.ctx, s.manager, id))
		s.Nil(s.uow.Review(id))
	})

	s.Run("error: other customer", func() {
		id := s.seedReview()
		err := s.commands.Delete(s.ctx, s.otherGuest, id)
		s.True(errs.Is(err, commands.ErrReviewNotOwned))
		s.NotNil(s.uow.Review(id))
	})

	s.Run("error: manager of another restaurant", func() {
		id := s.seedReview()
		err := s.commands.Delete(s.ctx, s.otherManager, id)
		s.True(errs.Is(err, shared.ErrNotRestaurantManager))
		s.True(errs.Is(err, errs.ErrAuthorization))
		s.NotNil(s.uow.Review(id))
	})

	s.Run("error: unknown review", func() {
		err := s.commands.Delete(s.ctx, s.customer, 9999)
		s.True(errs.Is(err, shared.ErrReviewNotFound))
	})
}
