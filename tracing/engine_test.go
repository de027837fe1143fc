package tracing_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dates"
	"github.com/katalvlaran/fcltrace/tracing"
)

// countingProcessor wraps dates.Process and counts invocations.
type countingProcessor struct {
	mu    sync.Mutex
	calls int
}

func (c *countingProcessor) process(s *core.Snapshot) map[string]dates.Processed {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	return dates.Process(s)
}

func (c *countingProcessor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls
}

func TestEngine_DateCache(t *testing.T) {
	ctx := context.Background()
	cp := &countingProcessor{}
	eng := tracing.NewEngine(tracing.WithDateProcessor(cp.process))
	s := crossMill(t, true)

	_, err := eng.UpdateScores(ctx, s, tracing.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 1, cp.count())

	// Same version: served from cache.
	_, err = eng.UpdateScores(ctx, s, tracing.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 1, cp.count())

	// Explicit and inferred share the same processed ranges.
	_, err = eng.UpdateScores(ctx, s, tracing.Settings{CrossContTraceType: tracing.UseExplicitDeliveryDates})
	require.NoError(t, err)
	assert.Equal(t, 1, cp.count())

	s.Touch()
	_, err = eng.UpdateScores(ctx, s, tracing.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 2, cp.count())

	require.NoError(t, s.SetDeliveryDates("a", "2023-12-31", ""))
	_, err = eng.UpdateScores(ctx, s, tracing.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 3, cp.count())

	eng.Invalidate()
	_, err = eng.UpdateScores(ctx, s, tracing.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 4, cp.count())
}

func TestEngine_DatesLoadedOnlyWhenNeeded(t *testing.T) {
	ctx := context.Background()
	cp := &countingProcessor{}
	eng := tracing.NewEngine(tracing.WithDateProcessor(cp.process))

	// No cross-contamination station: connections only.
	_, err := eng.Run(ctx, chain(t, nil, nil, opts(core.WithOutbreak())), tracing.DefaultSettings())
	require.NoError(t, err)
	assert.Zero(t, cp.count())

	// Cross-contamination, dates ignored.
	_, err = eng.UpdateScores(ctx, crossMill(t, true), tracing.Settings{CrossContTraceType: tracing.DoNotConsiderDeliveryDates})
	require.NoError(t, err)
	assert.Zero(t, cp.count())
}

func TestEngine_DateRanges(t *testing.T) {
	eng := tracing.NewEngine()
	s := crossMill(t, false)

	ranges := eng.DateRanges(context.Background(), s)
	require.Len(t, ranges, 3)

	jan5, ok := dates.Parse("2024-01-05")
	require.True(t, ok)
	assert.Equal(t, dates.Point(jan5), ranges["c"].ExpOut)
	assert.True(t, ranges["c"].ExpIn.IsUnbounded())
}

func TestEngine_Run(t *testing.T) {
	s := chain(t, opts(core.WithObserved(core.ObservedForward)), nil, opts(core.WithOutbreak()))

	rep, err := tracing.NewEngine().Run(context.Background(), s, tracing.DefaultSettings())
	require.NoError(t, err)
	require.NotNil(t, rep.Scores)
	require.NotNil(t, rep.Trace)

	// Results are written back into the snapshot records.
	assert.Equal(t, 1.0, s.Station("S1").Score)
	assert.True(t, s.Station("S2").CommonLink)
	assert.Equal(t, 1.0, s.Delivery("D1").Score)
	assert.True(t, s.Station("S3").Forward)
	assert.True(t, s.Delivery("D2").Forward)
	assert.False(t, s.Station("S1").Forward)
}

func TestEngine_RunErrors(t *testing.T) {
	_, err := tracing.NewEngine().Run(context.Background(), nil, tracing.DefaultSettings())
	assert.ErrorIs(t, err, tracing.ErrSnapshotNil)
}

func TestEngine_ResultsDoNotAliasSnapshot(t *testing.T) {
	s := chain(t, nil, nil, opts(core.WithOutbreak()))

	_, err := tracing.NewEngine().UpdateScores(context.Background(), s, tracing.DefaultSettings())
	require.NoError(t, err)
	assert.Zero(t, s.Station("S1").Score)
}

func TestEngine_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	eng := tracing.NewEngine(tracing.WithLogger(logger), tracing.WithLogger(nil))

	_, err := eng.Run(context.Background(), crossMill(t, true), tracing.DefaultSettings())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "scores updated")
	assert.Contains(t, out, "trace updated")
	assert.Contains(t, out, "delivery date cache refreshed")
}

func TestEngine_ConcurrentPasses(t *testing.T) {
	eng := tracing.NewEngine()
	s := crossMill(t, true)
	want, err := eng.UpdateScores(context.Background(), s, tracing.DefaultSettings())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*tracing.ScoreResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = eng.UpdateScores(context.Background(), s, tracing.DefaultSettings())
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCrossContTraceType(t *testing.T) {
	cases := map[string]tracing.CrossContTraceType{
		"USE_EXPLICIT_DELIVERY_DATES":          tracing.UseExplicitDeliveryDates,
		" use_infered_delivery_dates_limits ": tracing.UseInferredDeliveryDatesLimits,
		"Do_Not_Consider_Delivery_Dates":       tracing.DoNotConsiderDeliveryDates,
	}
	for in, want := range cases {
		got, err := tracing.ParseCrossContTraceType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.NoError(t, tracing.Settings{CrossContTraceType: got}.Validate())
	}

	_, err := tracing.ParseCrossContTraceType("USE_SOMETHING_ELSE")
	assert.ErrorIs(t, err, tracing.ErrUnknownTraceType)

	assert.Equal(t, "USE_INFERED_DELIVERY_DATES_LIMITS", tracing.DefaultSettings().CrossContTraceType.String())
	assert.Equal(t, "CrossContTraceType(7)", tracing.CrossContTraceType(7).String())
	assert.ErrorIs(t, tracing.Settings{CrossContTraceType: 7}.Validate(), tracing.ErrUnknownTraceType)
}
