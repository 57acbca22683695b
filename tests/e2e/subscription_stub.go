//go:build e2e

package e2e

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"borrowing-service/internal/infra/messaging"
	"borrowing-service/internal/pkg/config"
	"borrowing-service/internal/pkg/dates"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

// SubscriptionStub plays the subscription service: it answers every check
// request from a table of known subscriptions. Unknown users have none.
type SubscriptionStub struct {
	bus      *messaging.StreamBus
	consumer *messaging.Consumer
	stream   string

	mu     sync.Mutex
	subs   map[int64]messaging.SubscriptionCheckResult
	silent map[int64]bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSubscriptionStub(rdb redis.UniversalClient, cfg config.Config) *SubscriptionStub {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &SubscriptionStub{
		bus:    messaging.NewStreamBus(rdb, logger),
		stream: cfg.Bus.Streams.CheckResult,
		subs:   make(map[int64]messaging.SubscriptionCheckResult),
		silent: make(map[int64]bool),
	}
	s.consumer = messaging.NewConsumer(rdb, messaging.ConsumerConfig{
		Stream:   cfg.Bus.Streams.CheckRequested,
		Group:    "subscription-stub",
		Consumer: "stub",
		Block:    50 * time.Millisecond,
	}, s.handle, logger)
	return s
}

func (s *SubscriptionStub) Start(ctx context.Context) error {
	if err := s.consumer.EnsureGroup(ctx); err != nil {
		return err
	}
	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.consumer.Run(runCtx)
	}()
	return nil
}

func (s *SubscriptionStub) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Active registers a subscription ending on end.
func (s *SubscriptionStub) Active(userID int64, end time.Time) {
	endDate := dates.Format(end)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[userID] = messaging.SubscriptionCheckResult{HasActiveSubscription: true, SubscriptionEndDate: &endDate}
}

// Silence makes the stub ignore requests for userID.
func (s *SubscriptionStub) Silence(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.silent[userID] = true
}

func (s *SubscriptionStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.subs)
	clear(s.silent)
}

func (s *SubscriptionStub) handle(ctx context.Context, payload []byte) error {
	var req messaging.SubscriptionCheckRequested
	if err := jsoniter.Unmarshal(payload, &req); err != nil {
		return err
	}

	s.mu.Lock()
	res, silent := s.subs[req.UserID], s.silent[req.UserID]
	s.mu.Unlock()
	if silent {
		return nil
	}

	res.UserID = req.UserID
	res.CorrelationID = req.CorrelationID
	_, err := s.bus.Publish(ctx, s.stream, res)
	return err
}
