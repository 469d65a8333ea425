package bootstrap

import (
	"restaurant-reservation/internal/pkg/config"
	"restaurant-reservation/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig rejects job settings that would make gocron spin or never fire.
func LoadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Sweeper.Enabled && cfg.Sweeper.Interval <= 0 {
		return config.Config{}, errs.New("SWEEPER_INTERVAL must be positive when the sweeper is enabled")
	}
	if cfg.Kafka.Enabled() && cfg.Kafka.RelayInterval <= 0 {
		return config.Config{}, errs.New("KAFKA_RELAY_INTERVAL must be positive when brokers are configured")
	}
	return cfg, nil
}
