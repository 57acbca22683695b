package components

import (
	"context"
	"log/slog"

	"borrowing-service/internal/infra/messaging"
	"borrowing-service/internal/pkg/config"
	"borrowing-service/internal/usecase/commands"
	"borrowing-service/internal/usecase/subscription"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		messaging.NewStreamBus,
		fx.Annotate(
			messaging.NewEventPublisher,
			fx.As(new(subscription.RequestPublisher)),
			fx.As(new(commands.EventPublisher)),
		),
		NewCorrelator,
		func(c *subscription.Correlator) subscription.Checker { return c },
		func(c *subscription.Correlator) messaging.Resolver { return c },
		messaging.NewResultListener,
	),
	fx.Invoke(registerResultListener),
)

func NewCorrelator(pub subscription.RequestPublisher, cfg config.Config, logger *slog.Logger) *subscription.Correlator {
	return subscription.NewCorrelator(pub, cfg.Subscription.CheckTimeout, logger)
}

func registerResultListener(lc fx.Lifecycle, l *messaging.ResultListener) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error { return l.Start(ctx) },
		OnStop:  func(ctx context.Context) error { return l.Stop(ctx) },
	})
}
