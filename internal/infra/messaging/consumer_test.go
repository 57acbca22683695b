//go:build unit

package messaging

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumer_AcksAfterCancellation(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	runCtx, cancel := context.WithCancel(ctx)
	c := NewConsumer(rdb, ConsumerConfig{
		Stream: "results", Group: "g", Consumer: "c-1", Block: 50 * time.Millisecond,
	}, func(context.Context, []byte) error {
		// shutdown arrives while the batch is being handled
		cancel()
		return nil
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, c.EnsureGroup(ctx))
	require.NoError(t, rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: "results", Values: map[string]any{payloadField: `{"userId":1}`},
	}).Err())

	require.NoError(t, c.poll(runCtx))
	require.Error(t, runCtx.Err())

	pending, err := rdb.XPending(ctx, "results", "g").Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}
