package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"borrowing-service/internal/pkg/config"
	"borrowing-service/internal/pkg/dates"
	"borrowing-service/internal/usecase/subscription"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultGroupPrefix = "borrowing-service-"

type Resolver interface {
	Resolve(res subscription.CheckResult) bool
}

// ResultListener consumes subscription check results and hands them to the
// correlator. Results nobody waits for are dropped.
type ResultListener struct {
	consumer *Consumer
	resolver Resolver
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewResultListener(rdb redis.UniversalClient, cfg config.Config, resolver Resolver, logger *slog.Logger) *ResultListener {
	name := cfg.Bus.ConsumerName
	if name == "" {
		name = "borrowing-" + uuid.NewString()
	}
	// every instance needs all results, so replicas must not share a group
	group := cfg.Bus.ConsumerGroup
	if group == "" {
		group = DefaultGroupPrefix + name
	}
	l := &ResultListener{resolver: resolver, logger: logger}
	l.consumer = NewConsumer(rdb, ConsumerConfig{
		Stream:   cfg.Bus.Streams.CheckResult,
		Group:    group,
		Consumer: name,
		Block:    cfg.Bus.ReadBlock,
		Count:    cfg.Bus.ReadCount,
	}, l.handle, logger)
	return l
}

// Start creates the consumer group synchronously, so no result published after
// Start returns can be missed, and then reads in the background.
func (l *ResultListener) Start(ctx context.Context) error {
	if err := l.consumer.EnsureGroup(ctx); err != nil {
		return err
	}
	runCtx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.consumer.Run(runCtx)
	}()
	l.logger.Info("subscription result listener started",
		"stream", l.consumer.cfg.Stream, "group", l.consumer.cfg.Group, "consumer", l.consumer.cfg.Consumer)
	return nil
}

func (l *ResultListener) Stop(context.Context) error {
	if l.cancel != nil {
		l.cancel()
	}
	l.wg.Wait()
	return nil
}

func (l *ResultListener) handle(_ context.Context, payload []byte) error {
	var msg SubscriptionCheckResult
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("decode subscription check result: %w", err)
	}
	if msg.CorrelationID == "" {
		return fmt.Errorf("subscription check result for user %d has no correlation id", msg.UserID)
	}
	end, err := dates.ParsePtr(msg.SubscriptionEndDate)
	if err != nil {
		return fmt.Errorf("subscription end date: %w", err)
	}

	l.resolver.Resolve(subscription.CheckResult{
		UserID:                msg.UserID,
		CorrelationID:         msg.CorrelationID,
		HasActiveSubscription: msg.HasActiveSubscription,
		SubscriptionEndDate:   end,
	})
	return nil
}
