package components

import (
	"context"
	"log/slog"

	"borrowing-service/internal/pkg/clock"
	"borrowing-service/internal/pkg/config"
	"borrowing-service/internal/usecase/retention"
	"borrowing-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var RetentionModule = fx.Module("retention",
	fx.Provide(
		NewSweeper,
		NewScheduler,
	),
	fx.Invoke(registerScheduler),
)

func NewSweeper(repo shared.BorrowingRepository, clk clock.Clock, cfg config.Config, logger *slog.Logger) *retention.Sweeper {
	return retention.NewSweeper(repo, clk, cfg.Retention.Days, logger)
}

func NewScheduler(sweeper *retention.Sweeper, clk clock.Clock, cfg config.Config, logger *slog.Logger) (*retention.Scheduler, error) {
	hour, minute, err := cfg.Retention.SweepClock()
	if err != nil {
		return nil, err
	}
	return retention.NewScheduler(sweeper, clk, hour, minute, logger), nil
}

func registerScheduler(lc fx.Lifecycle, s *retention.Scheduler, cfg config.Config, logger *slog.Logger) {
	if !cfg.Retention.Enabled {
		logger.Info("retention sweep disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
}
