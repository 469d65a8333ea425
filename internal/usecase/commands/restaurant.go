package commands

import (
	"context"

	"restaurant-reservation/internal/domain/principal"
	"restaurant-reservation/internal/domain/restaurant"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/usecase/shared"
)

type RegisterRestaurantInput struct {
	Name        string
	Location    string
	Description string
	PhoneNumber string
}

type RestaurantCommands interface {
	Register(ctx context.Context, actor *principal.Principal, in RegisterRestaurantInput) (int64, error)
}

type restaurantCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRestaurantCommands(uow shared.UnitOfWork, clk clock.Clock) RestaurantCommands {
	return &restaurantCommandsImpl{uow: uow, clock: clk}
}

func (c *restaurantCommandsImpl) Register(ctx context.Context, actor *principal.Principal, in RegisterRestaurantInput) (int64, error) {
	if err := principal.RequireRole(actor, principal.RoleManager); err != nil {
		return 0, err
	}

	var id int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		manager, err := tx.Principals().FindByID(ctx, principal.RoleManager, actor.ID())
		if err != nil {
			return notFoundAs(err, shared.ErrManagerNotFound)
		}

		rest, err := restaurant.NewRestaurant(manager.ID(), in.Name, in.Location, in.Description, in.PhoneNumber, c.clock.Now())
		if err != nil {
			return markDomainErr(err)
		}

		id, err = tx.Restaurants().Create(ctx, rest)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
