package lock

import (
	"context"
	"sync"
	"time"

	"restaurant-reservation/internal/pkg/clock"
)

// LocalLocker is a process-local Locker for single-instance deployments.
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]localHold
	clock clock.Clock
	seq   uint64
}

type localHold struct {
	seq       uint64
	expiresAt time.Time
}

func NewLocalLocker(clk clock.Clock) *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localHold),
		clock: clk,
	}
}

func (l *LocalLocker) TryLock(_ context.Context, key string, ttl time.Duration) (ReleaseFunc, bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if h, ok := l.held[key]; ok && now.Before(h.expiresAt) {
		return nil, false, nil
	}

	l.seq++
	hold := localHold{seq: l.seq, expiresAt: now.Add(ttl)}
	l.held[key] = hold

	release := func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		if h, ok := l.held[key]; ok && h.seq == hold.seq {
			delete(l.held, key)
		}
		return nil
	}
	return release, true, nil
}
