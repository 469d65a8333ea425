package commands

import (
	"context"
	"time"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/shared"
)

type CreateReservationInput struct {
	RestaurantID    int64
	PeopleCount     int
	ReservationTime time.Time
}

type VisitInput struct {
	Name        string
	PhoneNumber string
}

type ReservationCommands interface {
	Create(ctx context.Context, actor *principal.Principal, in CreateReservationInput) (int64, error)
	AcceptOrRefuse(ctx context.Context, actor *principal.Principal, reservationID int64, decision reservation.Decision) error
	ConfirmVisit(ctx context.Context, actor *principal.Principal, reservationID int64, in VisitInput) error
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clk}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, actor *principal.Principal, in CreateReservationInput) (int64, error) {
	if err := principal.RequireRole(actor, principal.RoleCustomer); err != nil {
		return 0, err
	}
	count, err := reservation.NewPeopleCount(in.PeopleCount)
	if err != nil {
		return 0, markDomainErr(err)
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		customer, err := tx.Principals().FindByID(ctx, principal.RoleCustomer, actor.ID())
		if err != nil {
			return notFoundAs(err, shared.ErrCustomerNotFound)
		}
		rest, err := tx.Restaurants().FindByID(ctx, in.RestaurantID)
		if err != nil {
			return notFoundAs(err, shared.ErrRestaurantNotFound)
		}

		now := c.clock.Now()
		ref := reservation.RestaurantRef{ID: rest.ID(), ManagerID: rest.ManagerID()}
		res, err := reservation.NewReservation(customer.ID(), ref, count, in.ReservationTime, now)
		if err != nil {
			return markDomainErr(err)
		}

		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}
		id = res.ID()
		return tx.Outbox().Enqueue(ctx, reservation.NewEvent(reservation.EventCreated, res, now))
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AcceptOrRefuse re-derives ownership from the restaurant row, never from the reservation.
func (c *reservationCommandsImpl) AcceptOrRefuse(ctx context.Context, actor *principal.Principal, reservationID int64, decision reservation.Decision) error {
	if err := principal.RequireRole(actor, principal.RoleManager); err != nil {
		return err
	}
	if !decision.IsValid() {
		return markDomainErr(reservation.ErrInvalidDecision)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return notFoundAs(err, shared.ErrReservationNotFound)
		}
		rest, err := tx.Restaurants().FindByID(ctx, res.RestaurantID())
		if err != nil {
			return notFoundAs(err, shared.ErrRestaurantNotFound)
		}
		if !rest.IsManagedBy(actor.ID()) {
			return errs.Mark(shared.ErrNotRestaurantManager, errs.ErrAuthorization)
		}

		now := c.clock.Now()
		if err := res.Decide(decision, now); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return saveErr(err)
		}
		return tx.Outbox().Enqueue(ctx, reservation.NewEvent(reservation.DecisionEvent(decision), res, now))
	})
}

// ConfirmVisit checks the presented contact against the caller's record before ownership.
func (c *reservationCommandsImpl) ConfirmVisit(ctx context.Context, actor *principal.Principal, reservationID int64, in VisitInput) error {
	if err := principal.RequireRole(actor, principal.RoleCustomer); err != nil {
		return err
	}
	form, err := reservation.NewVisitForm(in.Name, in.PhoneNumber)
	if err != nil {
		return markDomainErr(err)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return notFoundAs(err, shared.ErrReservationNotFound)
		}
		customer, err := tx.Principals().FindByID(ctx, principal.RoleCustomer, actor.ID())
		if err != nil {
			return notFoundAs(err, shared.ErrCustomerNotFound)
		}

		if !customer.MatchesContact(form.Name(), form.PhoneNumber()) {
			return markDomainErr(reservation.ErrCustomerMismatch)
		}
		if res.CustomerID() != customer.ID() {
			return errs.Mark(shared.ErrNotReservationCustomer, errs.ErrAuthorization)
		}

		now := c.clock.Now()
		if err := res.ConfirmVisit(now); err != nil {
			return markDomainErr(err)
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return saveErr(err)
		}
		return tx.Outbox().Enqueue(ctx, reservation.NewEvent(reservation.EventCompleted, res, now))
	})
}
