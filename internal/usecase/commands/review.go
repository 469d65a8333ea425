package commands

import (
	"context"

	"restaurant-reservation/internal/domain/principal"
	domreview "restaurant-reservation/internal/domain/review"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/shared"
)

var (
	ErrReviewNotOwned      = errs.New("review not owned by caller")
	ErrReviewAlreadyExists = errs.New("review already exists for this reservation")
)

type CreateReviewInput struct {
	Title   string
	Comment string
	Rating  int
}

// UpdateReviewInput leaves nil fields unchanged.
type UpdateReviewInput struct {
	Title   *string
	Comment *string
	Rating  *int
}

type ReviewCommands interface {
	Create(ctx context.Context, actor *principal.Principal, reservationID int64, in CreateReviewInput) (int64, error)
	Update(ctx context.Context, actor *principal.Principal, reviewID int64, in UpdateReviewInput) error
	Delete(ctx context.Context, actor *principal.Principal, reviewID int64) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, actor *principal.Principal, reservationID int64, in CreateReviewInput) (int64, error) {
	if err := principal.RequireRole(actor, principal.RoleCustomer); err != nil {
		return 0, err
	}

	var id int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			return notFoundAs(err, shared.ErrReservationNotFound)
		}
		if res.CustomerID() != actor.ID() {
			return errs.Mark(shared.ErrNotReservationCustomer, errs.ErrAuthorization)
		}

		exists, err := tx.Reviews().ExistsForReservation(ctx, reservationID)
		if err != nil {
			return err
		}
		if exists {
			return errs.Mark(ErrReviewAlreadyExists, errs.ErrConflict)
		}

		rev, err := domreview.NewReview(res, in.Title, in.Comment, in.Rating, c.clock.Now())
		if err != nil {
			return markDomainErr(err)
		}

		id, err = tx.Reviews().Create(ctx, rev)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Mark(ErrReviewAlreadyExists, errs.ErrConflict)
		}
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (c *reviewCommandsImpl) Update(ctx context.Context, actor *principal.Principal, reviewID int64, in UpdateReviewInput) error {
	if err := principal.RequireRole(actor, principal.RoleCustomer); err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return notFoundAs(err, shared.ErrReviewNotFound)
		}
		if !rev.IsAuthoredBy(actor.ID()) {
			return errs.Mark(ErrReviewNotOwned, errs.ErrAuthorization)
		}

		if err := rev.Revise(in.Title, in.Comment, in.Rating, c.clock.Now()); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Reviews().Update(ctx, rev); err != nil {
			return notFoundAs(err, shared.ErrReviewNotFound)
		}
		return nil
	})
}

// Delete is allowed for the author and for the manager of the reviewed restaurant.
func (c *reviewCommandsImpl) Delete(ctx context.Context, actor *principal.Principal, reviewID int64) error {
	if actor == nil {
		return errs.Mark(principal.ErrForbidden, errs.ErrAuthorization)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return notFoundAs(err, shared.ErrReviewNotFound)
		}

		switch actor.Role() {
		case principal.RoleCustomer:
			if !rev.IsAuthoredBy(actor.ID()) {
				return errs.Mark(ErrReviewNotOwned, errs.ErrAuthorization)
			}
		case principal.RoleManager:
			rest, err := tx.Restaurants().FindByID(ctx, rev.RestaurantID())
			if err != nil {
				return notFoundAs(err, shared.ErrRestaurantNotFound)
			}
			if !rest.IsManagedBy(actor.ID()) {
				return errs.Mark(shared.ErrNotRestaurantManager, errs.ErrAuthorization)
			}
		default:
			return errs.Mark(principal.ErrForbidden, errs.ErrAuthorization)
		}

		if err := tx.Reviews().Delete(ctx, reviewID); err != nil {
			return notFoundAs(err, shared.ErrReviewNotFound)
		}
		return nil
	})
}
