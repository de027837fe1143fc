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

// nodeKind tells station keys from delivery keys in a mixed walk.
type nodeKind uint8

const (
	stationNode nodeKind = iota
	deliveryNode
)

// nodeRef addresses a station or delivery in the alternating backward walk.
type nodeRef struct {
	kind nodeKind
	id   string
}

// UpdateScores computes normalized outbreak scores.
//
// For each visible, non-contained outbreak station a backward walk counts +1
// on every station and delivery it reaches (once per outbreak). Scores are
// then divided by the number of outbreaks, so a score is the fraction of
// outbreaks from which the element is backward-reachable. CommonLink marks
// stations reached from every outbreak. With no outbreak all scores stay 0.
//
// Walk rules:
//  1. The outbreak station expands all its incoming deliveries, unless it has
//     KillContamination.
//  2. A delivery that is invisible or has KillContamination is not visited.
//  3. A visited delivery scores its source station and continues with the
//     source's backward deliveries relative to itself.
//  4. Contained or invisible stations are neither scored nor expanded.
//
// Errors: ErrSnapshotNil, ErrUnknownTraceType.
func (e *Engine) UpdateScores(ctx context.Context, s *core.Snapshot, settings Settings) (*ScoreResult, error) {
	if err := check(s, settings); err != nil {
		return nil, fmt.Errorf("UpdateScores: %w", err)
	}

	ctx, span := tracer.Start(ctx, "tracing.UpdateScores")
	defer span.End()
	start := time.Now()

	// 1. Reset
	stations := s.Stations()
	deliveries := s.Deliveries()
	res := &ScoreResult{
		Stations:   make(map[string]StationScore, len(stations)),
		Deliveries: make(map[string]float64, len(deliveries)),
	}
	for _, st := range stations {
		res.Stations[st.ID] = StationScore{}
	}
	for _, d := range deliveries {
		res.Deliveries[d.ID] = 0
	}

	nb := e.neighborhood(ctx, s, settings)
	counts := make(map[nodeRef]int, len(stations)+len(deliveries))

	// 2. One walk per outbreak, fresh visited set each time
	for _, st := range stations {
		if st.Contained || st.Invisible || !st.Outbreak {
			continue
		}
		res.Outbreaks++

		seed := st.ID
		w := dfs.NewWalker(dfs.WithFilterNeighbor(func(n nodeRef) bool {
			return walkable(s, n)
		}))
		w.Walk(func(n nodeRef) []nodeRef {
			counts[n]++
			return scoreSuccessors(s, nb, n, seed)
		}, nodeRef{kind: stationNode, id: seed})
	}

	// 3. Normalize
	if res.Outbreaks > 0 {
		total := float64(res.Outbreaks)
		for n, c := range counts {
			score := float64(c) / total
			switch n.kind {
			case stationNode:
				res.Stations[n.id] = StationScore{Score: score, CommonLink: score == 1.0}
			case deliveryNode:
				res.Deliveries[n.id] = score
			}
			if score > res.MaxScore {
				res.MaxScore = score
			}
		}
	}

	elapsed := time.Since(start)
	span.SetAttributes(
		attribute.Int("outbreaks", res.Outbreaks),
		attribute.Int("scored", len(counts)),
		attribute.Float64("max_score", res.MaxScore),
	)
	recordPassMetrics(ctx, "scores", elapsed, len(counts))
	e.logger.Debug("scores updated",
		slog.Int("outbreaks", res.Outbreaks),
		slog.Int("scored", len(counts)),
		slog.Float64("max_score", res.MaxScore),
		slog.Duration("duration", elapsed),
	)

	return res, nil
}

// walkable filters nodes the backward scoring walk may visit.
func walkable(s *core.Snapshot, n nodeRef) bool {
	if n.kind == stationNode {
		st := s.Station(n.id)
		return st != nil && !st.Contained && !st.Invisible
	}
	d := s.Delivery(n.id)

	return d != nil && !d.Invisible && !d.KillContamination
}

// scoreSuccessors returns what the scoring walk pushes after visiting n.
func scoreSuccessors(s *core.Snapshot, nb *neighborhood, n nodeRef, seed string) []nodeRef {
	if n.kind == stationNode {
		st := s.Station(n.id)
		if n.id != seed || st.KillContamination {
			return nil
		}
		return deliveryRefs(st.Incoming, nil)
	}

	d := s.Delivery(n.id)
	src := s.Station(d.Source)
	if src == nil || src.Contained || src.Invisible {
		return nil
	}
	next := []nodeRef{{kind: stationNode, id: src.ID}}

	return deliveryRefs(nb.backward(src, d), next)
}

// deliveryRefs appends delivery keys for ids to dst.
func deliveryRefs(ids []string, dst []nodeRef) []nodeRef {
	for _, id := range ids {
		dst = append(dst, nodeRef{kind: deliveryNode, id: id})
	}

	return dst
}
