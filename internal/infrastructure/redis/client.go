package redis

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mjindal/ledgerbook/internal/infrastructure/metrics"
)

// NewClient creates a Redis client and verifies connectivity. m may be
// nil, in which case commands are not instrumented.
func NewClient(ctx context.Context, redisURL string, m *metrics.Metrics) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if m != nil {
		client.AddHook(&metricsHook{metrics: m})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// metricsHook records per-command counters and latency. Key misses
// surface as redis.Nil and are not errors.
type metricsHook struct {
	metrics *metrics.Metrics
}

func (h *metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.record(cmd.Name(), time.Since(start), err)
		return err
	}
}

func (h *metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		duration := time.Since(start)
		for _, cmd := range cmds {
			h.record(cmd.Name(), duration, err)
		}
		return err
	}
}

func (h *metricsHook) record(operation string, duration time.Duration, err error) {
	h.metrics.RedisOperations.WithLabelValues(operation).Inc()
	h.metrics.RedisDuration.WithLabelValues(operation).Observe(duration.Seconds())

	if err != nil && !errors.Is(err, redis.Nil) && !errors.Is(err, context.Canceled) {
		h.metrics.RedisErrors.WithLabelValues(operation).Inc()
	}
}
