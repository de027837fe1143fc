package tracing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dfs"
)

// tracePass marks reachability from the observed elements of one pass.
// The walkers' visited sets double as the "already marked" checks.
type tracePass struct {
	snap *core.Snapshot
	nb   *neighborhood
	res  *TraceResult
	fwd  *dfs.Walker[string]
	bwd  *dfs.Walker[string]
}

// UpdateTrace computes forward/backward flags from every observed station and
// delivery. FULL marks both directions, FORWARD and BACKWARD one.
//
// Forward marking skips invisible deliveries and deliveries with
// KillContamination; a reached target station is marked and, unless it has
// KillContamination, the walk continues with its forward deliveries relative
// to the arriving one.
//
// Backward marking skips invisible deliveries only: a delivery with
// KillContamination is still marked backward, as is its source station, and
// only a source station with KillContamination stops the walk.
//
// Errors: ErrSnapshotNil, ErrUnknownTraceType.
func (e *Engine) UpdateTrace(ctx context.Context, s *core.Snapshot, settings Settings) (*TraceResult, error) {
	if err := check(s, settings); err != nil {
		return nil, fmt.Errorf("UpdateTrace: %w", err)
	}

	ctx, span := tracer.Start(ctx, "tracing.UpdateTrace")
	defer span.End()
	start := time.Now()

	// 1. Reset
	stations := s.Stations()
	deliveries := s.Deliveries()
	res := &TraceResult{
		Stations:   make(map[string]TraceFlags, len(stations)),
		Deliveries: make(map[string]TraceFlags, len(deliveries)),
	}
	for _, st := range stations {
		res.Stations[st.ID] = TraceFlags{}
	}
	for _, d := range deliveries {
		res.Deliveries[d.ID] = TraceFlags{}
	}

	p := &tracePass{snap: s, nb: e.neighborhood(ctx, s, settings), res: res}
	p.fwd = dfs.NewWalker(dfs.WithFilterNeighbor(func(id string) bool {
		d := s.Delivery(id)
		return d != nil && !d.Invisible && !d.KillContamination
	}))
	p.bwd = dfs.NewWalker(dfs.WithFilterNeighbor(func(id string) bool {
		d := s.Delivery(id)
		return d != nil && !d.Invisible
	}))

	// 2. Observed stations
	roots := 0
	for _, st := range stations {
		if st.Observed == core.ObservedNone {
			continue
		}
		roots++
		if st.Observed.Forward() {
			p.fwd.Walk(p.expandForward, st.Outgoing...)
		}
		if st.Observed.Backward() {
			p.bwd.Walk(p.expandBackward, st.Incoming...)
		}
	}

	// 3. Observed deliveries
	for _, d := range deliveries {
		if d.Observed == core.ObservedNone {
			continue
		}
		roots++
		if d.Observed.Forward() {
			p.fwd.Walk(p.expandForward, d.ID)
		}
		if d.Observed.Backward() {
			p.bwd.Walk(p.expandBackward, d.ID)
		}
	}

	elapsed := time.Since(start)
	marked := p.fwd.Count() + p.bwd.Count()
	span.SetAttributes(
		attribute.Int("roots", roots),
		attribute.Int("forward_deliveries", p.fwd.Count()),
		attribute.Int("backward_deliveries", p.bwd.Count()),
	)
	recordPassMetrics(ctx, "trace", elapsed, marked)
	e.logger.Debug("trace updated",
		slog.Int("roots", roots),
		slog.Int("forward_deliveries", p.fwd.Count()),
		slog.Int("backward_deliveries", p.bwd.Count()),
		slog.Duration("duration", elapsed),
	)

	return res, nil
}

// expandForward marks delivery id and its target, returning the deliveries
// contamination may continue on.
func (p *tracePass) expandForward(id string) []string {
	d := p.snap.Delivery(id)
	p.markDelivery(id, true)

	target := p.snap.Station(d.Target)
	if target == nil {
		return nil
	}
	p.markStation(target.ID, true)
	if target.KillContamination {
		return nil
	}

	return p.nb.forward(target, d)
}

// expandBackward marks delivery id and its source, returning the deliveries
// that may have contaminated it.
func (p *tracePass) expandBackward(id string) []string {
	d := p.snap.Delivery(id)
	p.markDelivery(id, false)

	source := p.snap.Station(d.Source)
	if source == nil {
		return nil
	}
	p.markStation(source.ID, false)
	if source.KillContamination {
		return nil
	}

	return p.nb.backward(source, d)
}

func (p *tracePass) markDelivery(id string, forward bool) {
	f := p.res.Deliveries[id]
	if forward {
		f.Forward = true
	} else {
		f.Backward = true
	}
	p.res.Deliveries[id] = f
}

func (p *tracePass) markStation(id string, forward bool) {
	f := p.res.Stations[id]
	if forward {
		f.Forward = true
	} else {
		f.Backward = true
	}
	p.res.Stations[id] = f
}
