// Package subscription correlates asynchronous subscription-check replies with the
// requests that are waiting for them.
package subscription

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"borrowing-service/internal/pkg/errs"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const DefaultCheckTimeout = 5 * time.Second

var tracer = otel.Tracer("borrowing-service/subscription")

type CheckRequest struct {
	UserID        int64
	CorrelationID string
}

type CheckResult struct {
	UserID                int64
	CorrelationID         string
	HasActiveSubscription bool
	SubscriptionEndDate   *time.Time
}

type RequestPublisher interface {
	PublishCheckRequested(ctx context.Context, req CheckRequest) error
}

type Checker interface {
	RequestCheck(ctx context.Context, userID int64) (CheckResult, error)
}

// Correlator owns the registry of pending checks. A slot is registered before the
// request is published and removed exactly once, whichever way the wait ends.
type Correlator struct {
	mu      sync.Mutex
	pending map[string]chan CheckResult

	publisher RequestPublisher
	timeout   time.Duration
	newID     func() string
	logger    *slog.Logger
}

type Option func(*Correlator)

func WithIDGenerator(gen func() string) Option {
	return func(c *Correlator) { c.newID = gen }
}

func NewCorrelator(publisher RequestPublisher, timeout time.Duration, logger *slog.Logger, opts ...Option) *Correlator {
	if timeout <= 0 {
		timeout = DefaultCheckTimeout
	}
	c := &Correlator{
		pending:   make(map[string]chan CheckResult),
		publisher: publisher,
		timeout:   timeout,
		newID:     uuid.NewString,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Correlator) RequestCheck(ctx context.Context, userID int64) (CheckResult, error) {
	id := c.newID()
	ctx, span := tracer.Start(ctx, "subscription.RequestCheck")
	span.SetAttributes(
		attribute.String("correlation_id", id),
		attribute.Int64("user_id", userID),
	)
	defer span.End()

	slot := c.register(id)
	defer c.release(id, slot)

	if err := c.publisher.PublishCheckRequested(ctx, CheckRequest{UserID: userID, CorrelationID: id}); err != nil {
		c.logger.Error("failed to publish subscription check request",
			"correlation_id", id, "user_id", userID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		return CheckResult{}, errs.Mark(errs.Wrap(err, "publish subscription check"), errs.ErrDispatchFailed)
	}

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case res := <-slot:
		span.SetAttributes(attribute.Bool("has_active_subscription", res.HasActiveSubscription))
		return res, nil
	case <-timer.C:
		c.logger.Error("subscription check timed out",
			"correlation_id", id, "user_id", userID, "timeout", c.timeout)
		span.SetStatus(codes.Error, "timed out")
		return CheckResult{}, errs.Mark(errs.Newf("no reply for correlation id %s within %s", id, c.timeout), errs.ErrCheckTimedOut)
	case <-ctx.Done():
		span.SetStatus(codes.Error, "cancelled")
		return CheckResult{}, errs.Wrap(ctx.Err(), "waiting for subscription check")
	}
}

// Resolve hands res to the caller waiting on its correlation id. It reports false for
// unknown, late or duplicate ids.
func (c *Correlator) Resolve(res CheckResult) bool {
	c.mu.Lock()
	slot, ok := c.pending[res.CorrelationID]
	if ok {
		delete(c.pending, res.CorrelationID)
	}
	c.mu.Unlock()

	if !ok {
		c.logger.Debug("ignoring subscription check result without pending request",
			"correlation_id", res.CorrelationID, "user_id", res.UserID)
		return false
	}
	select {
	case slot <- res:
	default:
	}
	return true
}

func (c *Correlator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Correlator) register(id string) chan CheckResult {
	slot := make(chan CheckResult, 1)
	c.mu.Lock()
	c.pending[id] = slot
	c.mu.Unlock()
	return slot
}

func (c *Correlator) release(id string, slot chan CheckResult) {
	c.mu.Lock()
	if cur, ok := c.pending[id]; ok && cur == slot {
		delete(c.pending, id)
	}
	c.mu.Unlock()
}
