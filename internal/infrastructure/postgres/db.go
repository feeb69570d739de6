package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjindal/ledgerbook/internal/infrastructure/metrics"
)

// PoolConfig holds the settings for the PostgreSQL connection pool.
type PoolConfig struct {
	URL      string
	MaxConns int
	MinConns int
	Metrics  *metrics.Metrics // may be nil
}

// NewPool creates a PostgreSQL connection pool and verifies connectivity.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.MinConns = int32(cfg.MinConns)

	if cfg.Metrics != nil {
		poolCfg.ConnConfig.Tracer = &queryTracer{metrics: cfg.Metrics}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// queryTracer records per-query counters and latency through the pgx
// tracing hooks.
type queryTracer struct {
	metrics *metrics.Metrics
}

type queryTraceKey struct{}

type queryTrace struct {
	start     time.Time
	operation string
	table     string
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	operation, table := classifyQuery(data.SQL)
	return context.WithValue(ctx, queryTraceKey{}, queryTrace{
		start:     time.Now(),
		operation: operation,
		table:     table,
	})
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	trace, ok := ctx.Value(queryTraceKey{}).(queryTrace)
	if !ok {
		return
	}

	t.metrics.DBQueries.WithLabelValues(trace.operation, trace.table).Inc()
	t.metrics.DBDuration.WithLabelValues(trace.operation, trace.table).Observe(time.Since(trace.start).Seconds())

	if data.Err != nil && !errors.Is(data.Err, context.Canceled) {
		t.metrics.DBErrors.WithLabelValues(trace.operation).Inc()
	}
}

// classifyQuery extracts the verb and target table from a SQL statement.
// Labels stay low-cardinality: anything it cannot classify becomes "other".
func classifyQuery(sql string) (operation, table string) {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "other", "other"
	}

	operation = strings.ToLower(fields[0])
	table = "other"

	var marker string
	switch operation {
	case "select", "delete":
		marker = "from"
	case "insert":
		marker = "into"
	case "update":
		if len(fields) > 1 {
			table = strings.ToLower(fields[1])
		}
		return operation, table
	default:
		return "other", "other"
	}

	for i, field := range fields[:len(fields)-1] {
		if strings.EqualFold(field, marker) {
			table = strings.ToLower(fields[i+1])
			break
		}
	}

	return operation, table
}
