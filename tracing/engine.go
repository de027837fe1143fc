package tracing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dates"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDateProcessor replaces dates.Process, e.g. to count invocations in tests.
// Passing nil has no effect.
func WithDateProcessor(fn func(*core.Snapshot) map[string]dates.Processed) Option {
	return func(e *Engine) {
		if fn != nil {
			e.processDates = fn
		}
	}
}

// dateCache holds the date ranges of the last snapshot version seen.
type dateCache struct {
	mu      sync.Mutex
	version string
	ranges  map[string]dates.Processed
}

// Engine computes outbreak scores and trace flags over snapshots.
// One Engine may be shared; its only state is the date cache.
type Engine struct {
	logger       *slog.Logger
	processDates func(*core.Snapshot) map[string]dates.Processed
	cache        dateCache
}

// NewEngine creates an Engine with the given options applied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:       slog.Default(),
		processDates: dates.Process,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// DateRanges returns the processed delivery dates of s, recomputing them only
// when s.Version() differs from the cached version. The returned map is shared
// with the cache and must not be modified.
func (e *Engine) DateRanges(ctx context.Context, s *core.Snapshot) map[string]dates.Processed {
	version := s.Version()

	e.cache.mu.Lock()
	defer e.cache.mu.Unlock()

	if e.cache.ranges != nil && e.cache.version == version {
		recordCacheLookup(ctx, true)
		return e.cache.ranges
	}
	recordCacheLookup(ctx, false)

	_, span := tracer.Start(ctx, "tracing.DateRanges",
		trace.WithAttributes(attribute.Int("deliveries", s.DeliveryCount())),
	)
	defer span.End()

	e.cache.ranges = e.processDates(s)
	e.cache.version = version
	e.logger.Debug("delivery date cache refreshed",
		slog.String("version", version),
		slog.Int("deliveries", len(e.cache.ranges)),
	)

	return e.cache.ranges
}

// Invalidate drops the cached date ranges.
func (e *Engine) Invalidate() {
	e.cache.mu.Lock()
	e.cache.version, e.cache.ranges = "", nil
	e.cache.mu.Unlock()
}

// Report bundles the outputs of Run.
type Report struct {
	Scores *ScoreResult
	Trace  *TraceResult
}

// Run computes scores and trace flags and writes both into s in place.
func (e *Engine) Run(ctx context.Context, s *core.Snapshot, settings Settings) (*Report, error) {
	scores, err := e.UpdateScores(ctx, s, settings)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	tr, err := e.UpdateTrace(ctx, s, settings)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	scores.Apply(s)
	tr.Apply(s)

	return &Report{Scores: scores, Trace: tr}, nil
}

// check validates the common arguments of every pass.
func check(s *core.Snapshot, settings Settings) error {
	if s == nil {
		return ErrSnapshotNil
	}

	return settings.Validate()
}
