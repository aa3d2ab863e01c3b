//go:build integration

package worker

// Exercises the Redis queues, DLQ and retry cron against a real container.
// Run with: go test -tags integration ./internal/worker/... -v

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/josebazania/restaurantepos/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type handlerFunc func(ctx context.Context, raw json.RawMessage) error

func (f handlerFunc) Process(ctx context.Context, raw json.RawMessage) error { return f(ctx, raw) }

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(rdURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func popJob(t *testing.T, rdb *redis.Client, queue string) (string, string) {
	t.Helper()
	res, err := rdb.RPop(context.Background(), queue).Result()
	require.NoError(t, err)
	return queue, res
}

func TestDispatcher_FailedJobGoesToDLQAndIsReplayed(t *testing.T) {
	ctx := context.Background()
	rdb := newRedis(t)
	d := NewDispatcher(rdb)

	require.NoError(t, d.EnqueueEmail(ctx, EmailJobPayload{ToEmail: "a@b.c"}))

	failing := map[string]Handler{
		JobEmail: handlerFunc(func(context.Context, json.RawMessage) error { return errors.New("smtp 421") }),
	}
	queue, raw := popJob(t, rdb, QueueEmail)
	processJob(ctx, rdb, failing, queue, raw)

	n, err := DLQLength(ctx, rdb, QueueEmail)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	cb := infra.NewCircuitBreaker(infra.DefaultCBConfig("smtp"))
	cfg := RetryCronConfig{RDB: rdb, CB: cb, MaxAttempts: 2}
	assert.Equal(t, 1, processRetries(ctx, cfg))

	var delivered []string
	ok := map[string]Handler{
		JobEmail: handlerFunc(func(_ context.Context, raw json.RawMessage) error {
			var p EmailJobPayload
			require.NoError(t, json.Unmarshal(raw, &p))
			delivered = append(delivered, p.ToEmail)
			return nil
		}),
	}
	queue, raw = popJob(t, rdb, QueueEmail)
	processJob(ctx, rdb, ok, queue, raw)
	assert.Equal(t, []string{"a@b.c"}, delivered)

	n, err = DLQLength(ctx, rdb, QueueEmail)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRetryCron_ParksExhaustedJobs(t *testing.T) {
	ctx := context.Background()
	rdb := newRedis(t)

	SendToDLQ(ctx, rdb, QueueEmail, Job{Type: JobEmail, Payload: json.RawMessage(`{}`), Attempts: 3}, "boom")

	cfg := RetryCronConfig{RDB: rdb, CB: infra.NewCircuitBreaker(infra.DefaultCBConfig("smtp")), MaxAttempts: 3}
	assert.Zero(t, processRetries(ctx, cfg))

	parked, err := rdb.LLen(ctx, ExhaustedQueue).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, parked)
}

func TestRetryCron_SkipsWhileBreakerOpen(t *testing.T) {
	ctx := context.Background()
	rdb := newRedis(t)

	SendToDLQ(ctx, rdb, QueueEmail, Job{Type: JobEmail, Payload: json.RawMessage(`{}`), Attempts: 1}, "boom")

	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{Name: "smtp", FailureThreshold: 1})
	_ = cb.Execute(func() error { return errors.New("down") })
	require.Equal(t, infra.CBOpen, cb.State())

	assert.Zero(t, processRetries(ctx, RetryCronConfig{RDB: rdb, CB: cb, MaxAttempts: 5}))
	n, err := DLQLength(ctx, rdb, QueueEmail)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
