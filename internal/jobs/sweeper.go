package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/infra/lock"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/shared"
)

// SweeperLockKey is shared by every replica running the sweeper.
const SweeperLockKey = "reservation-expiry-sweeper"

var ErrSweepInProgress = errs.New("expiry sweep already running elsewhere")

type SweeperConfig struct {
	// Slack widens the candidate query past now; candidates inside it are not cancelled yet.
	Slack   time.Duration
	LockTTL time.Duration
}

type SweepResult struct {
	Scanned   int
	Cancelled int
	Skipped   int
	Failed    int
}

// ExpirySweeper cancels accepted reservations whose time passed without a visit.
type ExpirySweeper struct {
	uow    shared.UnitOfWork
	locker lock.Locker
	clock  clock.Clock
	logger *slog.Logger
	cfg    SweeperConfig
}

func NewExpirySweeper(uow shared.UnitOfWork, locker lock.Locker, clk clock.Clock, logger *slog.Logger, cfg SweeperConfig) *ExpirySweeper {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = 50 * time.Second
	}
	return &ExpirySweeper{
		uow:    uow,
		locker: locker,
		clock:  clk,
		logger: logger,
		cfg:    cfg,
	}
}

// Sweep is safe to run repeatedly; a run with nothing overdue changes nothing.
func (s *ExpirySweeper) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	ctx, cancel := context.WithTimeout(ctx, s.cfg.LockTTL)
	defer cancel()

	release, ok, err := s.locker.TryLock(ctx, SweeperLockKey, s.cfg.LockTTL)
	if err != nil {
		return result, errs.Wrap(err, "failed to take sweeper lock")
	}
	if !ok {
		return result, ErrSweepInProgress
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("Failed to release sweeper lock", "error", err)
		}
	}()

	now := s.clock.Now()

	var candidates []*reservation.Reservation
	err = s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		candidates, err = tx.Reservations().FindAccepted(ctx, now.Add(s.cfg.Slack))
		return err
	})
	if err != nil {
		return result, errs.Wrap(err, "failed to load expiry candidates")
	}
	result.Scanned = len(candidates)

	for _, c := range candidates {
		if !c.IsOverdue(now) {
			result.Skipped++
			continue
		}
		if err := ctx.Err(); err != nil {
			return result, errs.Wrap(err, "sweep interrupted")
		}

		err := s.expire(ctx, c.ID(), now)
		switch {
		case err == nil:
			result.Cancelled++
		case isRaceLost(err):
			result.Skipped++
		default:
			result.Failed++
			s.logger.Error("Failed to expire reservation",
				"reservation_id", c.ID(),
				"error", err,
			)
		}
	}

	return result, nil
}

// expire re-checks the reservation under a row lock before cancelling it.
func (s *ExpirySweeper) expire(ctx context.Context, id int64, now time.Time) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := res.Expire(now); err != nil {
			return err
		}
		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}
		return tx.Outbox().Enqueue(ctx, reservation.NewEvent(reservation.EventExpired, res, now))
	})
}

// isRaceLost reports a candidate that a concurrent request moved on since the scan.
func isRaceLost(err error) bool {
	return errs.Is(err, reservation.ErrNotExpirable) ||
		infra.IsKind(err, infra.KindNotFound) ||
		infra.IsKind(err, infra.KindConflict)
}
