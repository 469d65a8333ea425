package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant-reservation/internal/pkg/errs"

	"github.com/go-co-op/gocron/v2"
)

const (
	SweeperJobName = "reservation-expiry-sweeper"
	RelayJobName   = "reservation-event-relay"
)

type SchedulerConfig struct {
	SweeperEnabled  bool
	SweeperInterval time.Duration
	RelayInterval   time.Duration
}

// Scheduler runs the background jobs. Each job is a singleton: a slow run delays the next one.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewScheduler registers the sweeper when enabled and the relay when one is given.
func NewScheduler(cfg SchedulerConfig, sweeper *ExpirySweeper, relay *OutboxRelay, logger *slog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create scheduler")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sched := &Scheduler{
		scheduler: s,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}

	if cfg.SweeperEnabled && sweeper != nil {
		if err := sched.add(SweeperJobName, cfg.SweeperInterval, func() { sched.runSweep(sweeper) }); err != nil {
			cancel()
			return nil, err
		}
	}
	if relay != nil {
		if err := sched.add(RelayJobName, cfg.RelayInterval, func() { sched.runRelay(relay) }); err != nil {
			cancel()
			return nil, err
		}
	}

	return sched, nil
}

func (s *Scheduler) add(name string, every time.Duration, task func()) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(task),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return errs.Wrapf(err, "failed to schedule %s", name)
	}
	return nil
}

func (s *Scheduler) runSweep(sweeper *ExpirySweeper) {
	result, err := sweeper.Sweep(s.ctx)
	if err != nil {
		if errs.Is(err, ErrSweepInProgress) {
			s.logger.Debug("Expiry sweep skipped, another instance holds the lock")
			return
		}
		s.logger.Error("Expiry sweep failed", "error", err)
		return
	}
	if result.Scanned > 0 {
		s.logger.Info("Expiry sweep finished",
			"scanned", result.Scanned,
			"cancelled", result.Cancelled,
			"skipped", result.Skipped,
			"failed", result.Failed,
		)
	}
}

func (s *Scheduler) runRelay(relay *OutboxRelay) {
	n, err := relay.Relay(s.ctx)
	if err != nil {
		s.logger.Error("Event relay failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Debug("Relayed reservation events", "count", n)
	}
}

// JobNames lists the registered jobs.
func (s *Scheduler) JobNames() []string {
	jobs := s.scheduler.Jobs()
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name())
	}
	return names
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

func (s *Scheduler) Shutdown() error {
	s.cancel()
	if err := s.scheduler.Shutdown(); err != nil {
		return errs.Wrap(err, "failed to stop scheduler")
	}
	return nil
}
