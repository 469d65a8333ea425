//go:build unit

package jobs_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"restaurant-reservation/internal/infra/lock"
	"restaurant-reservation/internal/jobs"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler(t *testing.T) {
	uow := fake.NewUnitOfWork()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sweeper := jobs.NewExpirySweeper(uow, lock.NewLocalLocker(clk), clk, logger, jobs.SweeperConfig{Slack: 10 * time.Minute})

	cases := []struct {
		name     string
		cfg      jobs.SchedulerConfig
		relay    *jobs.OutboxRelay
		expected []string
	}{
		{
			name:     "sweeper and relay",
			cfg:      jobs.SchedulerConfig{SweeperEnabled: true, SweeperInterval: time.Minute, RelayInterval: time.Minute},
			relay:    jobs.NewOutboxRelay(uow, nil, clk, logger, 10),
			expected: []string{jobs.SweeperJobName, jobs.RelayJobName},
		},
		{
			name:     "sweeper disabled",
			cfg:      jobs.SchedulerConfig{SweeperEnabled: false, SweeperInterval: time.Minute, RelayInterval: time.Minute},
			relay:    jobs.NewOutboxRelay(uow, nil, clk, logger, 10),
			expected: []string{jobs.RelayJobName},
		},
		{
			name:     "no relay configured",
			cfg:      jobs.SchedulerConfig{SweeperEnabled: true, SweeperInterval: time.Minute},
			expected: []string{jobs.SweeperJobName},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := jobs.NewScheduler(tc.cfg, sweeper, tc.relay, logger)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.expected, s.JobNames())

			s.Start()
			require.NoError(t, s.Shutdown())
		})
	}
}

func TestNewScheduler_RejectsInvalidInterval(t *testing.T) {
	uow := fake.NewUnitOfWork()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sweeper := jobs.NewExpirySweeper(uow, lock.NewLocalLocker(clk), clk, logger, jobs.SweeperConfig{})

	_, err := jobs.NewScheduler(jobs.SchedulerConfig{SweeperEnabled: true, SweeperInterval: 0}, sweeper, nil, logger)
	assert.Error(t, err)
}
