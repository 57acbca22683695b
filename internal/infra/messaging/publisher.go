package messaging

import (
	"context"

	"borrowing-service/internal/pkg/config"
	"borrowing-service/internal/usecase/commands"
	"borrowing-service/internal/usecase/subscription"
)

// EventPublisher maps use-case events onto their streams.
type EventPublisher struct {
	bus     *StreamBus
	streams config.StreamConfig
}

func NewEventPublisher(bus *StreamBus, cfg config.Config) *EventPublisher {
	return &EventPublisher{bus: bus, streams: cfg.Bus.Streams}
}

func (p *EventPublisher) PublishCheckRequested(ctx context.Context, req subscription.CheckRequest) error {
	_, err := p.bus.Publish(ctx, p.streams.CheckRequested, SubscriptionCheckRequested{
		UserID:        req.UserID,
		CorrelationID: req.CorrelationID,
	})
	return err
}

func (p *EventPublisher) PublishBorrowingCreated(ctx context.Context, ev commands.BorrowingCreated) error {
	_, err := p.bus.Publish(ctx, p.streams.BorrowingCreated, BorrowingCreated{BookUnitID: ev.BookUnitID})
	return err
}
