// Package messaging carries service events over Redis Streams. Every entry holds a
// single "payload" field with the JSON document.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

const payloadField = "payload"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type StreamBus struct {
	rdb    redis.UniversalClient
	logger *slog.Logger
}

func NewStreamBus(rdb redis.UniversalClient, logger *slog.Logger) *StreamBus {
	return &StreamBus{rdb: rdb, logger: logger}
}

// Publish appends v as JSON to stream and returns the entry id.
func (b *StreamBus) Publish(ctx context.Context, stream string, v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", stream, err)
	}
	id, err := b.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{payloadField: string(payload)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("xadd %s: %w", stream, err)
	}
	b.logger.Debug("published message", "stream", stream, "id", id)
	return id, nil
}

// HandlerFunc processes one raw JSON payload. Returning an error only
// gets the message logged; it is acknowledged either way.
type HandlerFunc func(ctx context.Context, payload []byte) error

type ConsumerConfig struct {
	Stream   string
	Group    string
	Consumer string
	Block    time.Duration
	Count    int64
}

type Consumer struct {
	rdb     redis.UniversalClient
	cfg     ConsumerConfig
	handler HandlerFunc
	logger  *slog.Logger
}

func NewConsumer(rdb redis.UniversalClient, cfg ConsumerConfig, handler HandlerFunc, logger *slog.Logger) *Consumer {
	if cfg.Block <= 0 {
		cfg.Block = 2 * time.Second
	}
	if cfg.Count <= 0 {
		cfg.Count = 32
	}
	return &Consumer{rdb: rdb, cfg: cfg, handler: handler, logger: logger}
}

// EnsureGroup creates the consumer group (and the stream) if it does not exist yet.
// A new group only sees messages appended after its creation.
func (c *Consumer) EnsureGroup(ctx context.Context) error {
	err := c.rdb.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "$").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create group %s on %s: %w", c.cfg.Group, c.cfg.Stream, err)
	}
	return nil
}

// Run reads until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := c.poll(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.Error("stream read failed", "stream", c.cfg.Stream, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
	}
}

func (c *Consumer) poll(ctx context.Context) error {
	streams, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		Streams:  []string{c.cfg.Stream, ">"},
		Count:    c.cfg.Count,
		Block:    c.cfg.Block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, s := range streams {
		for _, msg := range s.Messages {
			c.handle(ctx, msg)
		}
	}
	return nil
}

func (c *Consumer) handle(ctx context.Context, msg redis.XMessage) {
	raw, ok := msg.Values[payloadField].(string)
	if !ok {
		c.logger.Warn("dropping message without payload", "stream", c.cfg.Stream, "id", msg.ID)
	} else if err := c.handler(ctx, []byte(raw)); err != nil {
		c.logger.Warn("dropping unprocessable message", "stream", c.cfg.Stream, "id", msg.ID, "error", err)
	}

	// ack even when Run was cancelled mid-batch, the group never re-reads pending entries
	if err := c.rdb.XAck(context.WithoutCancel(ctx), c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
		c.logger.Error("failed to ack message", "stream", c.cfg.Stream, "id", msg.ID, "error", err)
	}
}
