package tracing

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for engine operations.
var (
	tracer = otel.Tracer("fcltrace.tracing")
	meter  = otel.Meter("fcltrace.tracing")
)

// Metrics for engine passes.
var (
	passLatency   metric.Float64Histogram
	passTotal     metric.Int64Counter
	cacheLookups  metric.Int64Counter
	elementsTouch metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		passLatency, err = meter.Float64Histogram(
			"tracing_pass_duration_seconds",
			metric.WithDescription("Duration of scoring and trace passes"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		passTotal, err = meter.Int64Counter(
			"tracing_pass_total",
			metric.WithDescription("Total number of scoring and trace passes"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cacheLookups, err = meter.Int64Counter(
			"tracing_date_cache_lookups_total",
			metric.WithDescription("Delivery date cache lookups by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		elementsTouch, err = meter.Int64Histogram(
			"tracing_elements_marked",
			metric.WithDescription("Stations and deliveries scored or marked per pass"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordPassMetrics records one scoring or trace pass.
func recordPassMetrics(ctx context.Context, operation string, duration time.Duration, marked int) {
	if err := initMetrics(); err != nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", operation))

	passLatency.Record(ctx, duration.Seconds(), attrs)
	passTotal.Add(ctx, 1, attrs)
	elementsTouch.Record(ctx, int64(marked), attrs)
}

// recordCacheLookup records a date cache hit or miss.
func recordCacheLookup(ctx context.Context, hit bool) {
	if err := initMetrics(); err != nil {
		return
	}

	cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}
