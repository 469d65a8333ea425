//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/queries"
	"restaurant-reservation/internal/usecase/shared"
	"restaurant-reservation/tests/common/builder"
	queriesmock "restaurant-reservation/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRestaurantQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("Get returns the view", func(t *testing.T) {
		store := queriesmock.NewMockRestaurantReadStore(gomock.NewController(t))
		view := builder.NewRestaurantBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewRestaurantQueries(store).Get(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "Seoul Table", got.Name)
	})

	t.Run("Get maps a missing row to not found", func(t *testing.T) {
		store := queriesmock.NewMockRestaurantReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), int64(404)).
			Return(nil, infra.WrapRepoErr("restaurant not found", pgx.ErrNoRows))

		_, err := queries.NewRestaurantQueries(store).Get(ctx, 404)
		assert.True(t, errs.Is(err, shared.ErrRestaurantNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("Get passes store failures through", func(t *testing.T) {
		store := queriesmock.NewMockRestaurantReadStore(gomock.NewController(t))
		boom := errors.New("timeout")
		store.EXPECT().FindByID(gomock.Any(), int64(10)).Return(nil, infra.WrapRepoErr("failed to get restaurant", boom))

		_, err := queries.NewRestaurantQueries(store).Get(ctx, 10)
		assert.True(t, errs.Is(err, boom))
		assert.False(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("List returns every restaurant", func(t *testing.T) {
		store := queriesmock.NewMockRestaurantReadStore(gomock.NewController(t))
		store.EXPECT().List(gomock.Any()).Return([]*queries.RestaurantView{
			builder.NewRestaurantBuilder().BuildView(),
			builder.NewRestaurantBuilder().With(func(b *builder.RestaurantBuilder) { b.ID = 11 }).BuildView(),
		}, nil)

		got, err := queries.NewRestaurantQueries(store).List(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
