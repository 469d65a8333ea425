package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"restaurant-reservation/internal/infra/lock"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var LockModule = fx.Module("lock",
	fx.Provide(
		NewLocker,
	),
)

// NewLocker uses Redis when REDIS_ADDR is set so only one replica sweeps at a time.
func NewLocker(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) lock.Locker {
	if !cfg.Redis.Enabled() {
		logger.Info("Redis not configured, sweeper lock is process-local")
		return lock.NewLocalLocker(clk)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				return err
			}
			logger.Info("Connected to Redis", "addr", cfg.Redis.Addr)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisLocker(client)
}
