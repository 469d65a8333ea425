package bootstrap

import (
	"context"
	"log/slog"

	"restaurant-reservation/internal/infra/events"
	"restaurant-reservation/internal/infra/lock"
	"restaurant-reservation/internal/jobs"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/config"
	"restaurant-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewExpirySweeper,
		NewOutboxRelay,
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewExpirySweeper(uow shared.UnitOfWork, locker lock.Locker, clk clock.Clock, logger *slog.Logger, cfg config.Config) *jobs.ExpirySweeper {
	return jobs.NewExpirySweeper(uow, locker, clk, logger, jobs.SweeperConfig{
		Slack:   cfg.Sweeper.Slack,
		LockTTL: cfg.Sweeper.LockTTL,
	})
}

// NewOutboxRelay returns nil without brokers; events then accumulate in the outbox.
func NewOutboxRelay(lc fx.Lifecycle, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger, cfg config.Config) *jobs.OutboxRelay {
	if !cfg.Kafka.Enabled() {
		logger.Info("Kafka not configured, reservation events stay in the outbox")
		return nil
	}

	publisher := events.NewKafkaPublisher(events.KafkaConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return jobs.NewOutboxRelay(uow, publisher, clk, logger, cfg.Kafka.RelayBatch)
}

func NewScheduler(sweeper *jobs.ExpirySweeper, relay *jobs.OutboxRelay, logger *slog.Logger, cfg config.Config) (*jobs.Scheduler, error) {
	return jobs.NewScheduler(jobs.SchedulerConfig{
		SweeperEnabled:  cfg.Sweeper.Enabled,
		SweeperInterval: cfg.Sweeper.Interval,
		RelayInterval:   cfg.Kafka.RelayInterval,
	}, sweeper, relay, logger)
}

func startScheduler(lc fx.Lifecycle, scheduler *jobs.Scheduler, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			logger.Info("Background jobs started", "jobs", scheduler.JobNames())
			return nil
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Shutdown()
		},
	})
}
