//go:build unit

package lock_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"restaurant-reservation/internal/infra/lock"
	"restaurant-reservation/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()

	t.Run("second caller is refused while the lock is held", func(t *testing.T) {
		l := lock.NewLocalLocker(clock.NewMockClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))

		release, ok, err := l.TryLock(ctx, "sweeper", time.Minute)
		require.NoError(t, err)
		require.True(t, ok)

		_, ok, err = l.TryLock(ctx, "sweeper", time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		_, ok, err = l.TryLock(ctx, "other-key", time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, release(ctx))
		_, ok, _ = l.TryLock(ctx, "sweeper", time.Minute)
		assert.True(t, ok)
	})

	t.Run("expired hold can be taken over and the stale release is ignored", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		l := lock.NewLocalLocker(clk)

		staleRelease, ok, _ := l.TryLock(ctx, "sweeper", time.Minute)
		require.True(t, ok)

		clk.Add(time.Minute)
		_, ok, _ = l.TryLock(ctx, "sweeper", time.Minute)
		require.True(t, ok)

		require.NoError(t, staleRelease(ctx))
		_, ok, _ = l.TryLock(ctx, "sweeper", time.Minute)
		assert.False(t, ok, "stale release must not free the new holder's lock")
	})

	t.Run("exactly one of many concurrent callers wins", func(t *testing.T) {
		l := lock.NewLocalLocker(clock.NewRealClock())

		var winners atomic.Int32
		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok, _ := l.TryLock(ctx, "sweeper", time.Minute); ok {
					winners.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), winners.Load())
	})
}
