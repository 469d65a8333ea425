package lock

import (
	"context"
	"time"
)

// ReleaseFunc gives a held lock back. Releasing after the TTL has passed is a no-op.
type ReleaseFunc func(ctx context.Context) error

// Locker grants a named lock to at most one holder at a time.
type Locker interface {
	// TryLock never waits. ok is false when someone else holds key.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release ReleaseFunc, ok bool, err error)
}
