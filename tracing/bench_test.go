package tracing_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/fcltrace/builder"
	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/tracing"
)

// benchNetwork returns a dated 300-station random network with five
// outbreaks, ten cross-contaminating stations and three observed ones.
func benchNetwork(b *testing.B) *core.Snapshot {
	b.Helper()
	s, err := builder.BuildSnapshot(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithStartDate("2024-01-01")},
		builder.RandomNetwork(300, 0.02),
		builder.RandomOutbreaks(5),
		builder.MarkCrossContamination(10, 20, 30, 40, 50, 60, 70, 80, 90, 100),
		builder.MarkObserved(core.ObservedFull, 5, 150, 295),
	)
	if err != nil {
		b.Fatal(err)
	}

	return s
}

// BenchmarkUpdateScores measures scoring with a warm date cache.
func BenchmarkUpdateScores(b *testing.B) {
	s := benchNetwork(b)
	eng := tracing.NewEngine()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.UpdateScores(ctx, s, tracing.DefaultSettings()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpdateTrace measures tracing with a warm date cache.
func BenchmarkUpdateTrace(b *testing.B) {
	s := benchNetwork(b)
	eng := tracing.NewEngine()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.UpdateTrace(ctx, s, tracing.DefaultSettings()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_ColdCache invalidates the date cache before every run.
func BenchmarkRun_ColdCache(b *testing.B) {
	s := benchNetwork(b)
	eng := tracing.NewEngine()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.Invalidate()
		if _, err := eng.Run(ctx, s, tracing.DefaultSettings()); err != nil {
			b.Fatal(err)
		}
	}
}
