package tracing

import (
	"context"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dates"
)

// neighborhood answers which deliveries a lot can reach through a station.
// Date ranges are loaded on first use, so passes over snapshots without
// date-gated cross-contamination never touch the date processor.
type neighborhood struct {
	snap     *core.Snapshot
	settings Settings
	load     func() map[string]dates.Processed
	ranges   map[string]dates.Processed
}

func (e *Engine) neighborhood(ctx context.Context, s *core.Snapshot, settings Settings) *neighborhood {
	return &neighborhood{
		snap:     s,
		settings: settings,
		load:     func() map[string]dates.Processed { return e.DateRanges(ctx, s) },
	}
}

// dateRanges returns the cached ranges, loading them once.
func (n *neighborhood) dateRanges() map[string]dates.Processed {
	if n.ranges == nil {
		n.ranges = n.load()
	}

	return n.ranges
}

// plausible reports whether inbound lot in could have fed outbound lot out at
// their shared station: out may leave no earlier than in arrives.
func (n *neighborhood) plausible(in, out string) bool {
	ranges := n.dateRanges()
	rin, okIn := ranges[in]
	rout, okOut := ranges[out]
	if !okIn || !okOut {
		// Added after the ranges were computed without Touch: treat as undated.
		return true
	}

	inRange, outRange := rin.CompIn, rout.CompOut
	if n.settings.CrossContTraceType == UseExplicitDeliveryDates {
		inRange, outRange = rin.ExpIn, rout.ExpOut
	}

	return outRange.Upper >= inRange.Lower
}

// backward returns the incoming deliveries of st that may have contaminated
// its outgoing delivery d.
//
//   - KillContamination: none.
//   - CrossContamination with dates: connected deliveries, then every other
//     incoming delivery that arrived no later than d could have left.
//   - CrossContamination without dates: all incoming deliveries.
//   - Otherwise: connected deliveries only.
func (n *neighborhood) backward(st *core.Station, d *core.Delivery) []string {
	switch {
	case st.KillContamination:
		return nil

	case st.CrossContamination && n.settings.CrossContTraceType.usesDates():
		out := st.ConnectedFrom(d.ID)
		seen := toSet(out)
		for _, in := range st.Incoming {
			if _, ok := seen[in]; ok {
				continue
			}
			if n.plausible(in, d.ID) {
				out = append(out, in)
				seen[in] = struct{}{}
			}
		}
		return out

	case st.CrossContamination:
		return append([]string(nil), st.Incoming...)

	default:
		return st.ConnectedFrom(d.ID)
	}
}

// forward returns the outgoing deliveries of st that its incoming delivery d
// may have contaminated. Mirror image of backward.
func (n *neighborhood) forward(st *core.Station, d *core.Delivery) []string {
	switch {
	case st.KillContamination:
		return nil

	case st.CrossContamination && n.settings.CrossContTraceType.usesDates():
		out := st.ConnectedTo(d.ID)
		seen := toSet(out)
		for _, o := range st.Outgoing {
			if _, ok := seen[o]; ok {
				continue
			}
			if n.plausible(d.ID, o) {
				out = append(out, o)
				seen[o] = struct{}{}
			}
		}
		return out

	case st.CrossContamination:
		return append([]string(nil), st.Outgoing...)

	default:
		return st.ConnectedTo(d.ID)
	}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}
