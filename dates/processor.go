// SPDX-License-Identifier: MIT
// Package: fcltrace/dates
//
// processor.go - delivery date plausibility processing.
//
// Model:
//   - DateOut (dispatch at Source) must not be after DateIn (arrival at Target).
//   - A station connection X→Y means lot X arrived before lot Y left:
//     Y.out ≥ X.in. Forward propagation raises lower bounds along connections,
//     backward propagation lowers upper bounds against them.
//
// Passes:
//   - At most MaxPasses (2): an initial pass and, if the inter-delivery check
//     flags new implausible dates, one revision pass. Not a fixpoint loop.
//
// Determinism:
//   - Propagation roots are ordered by bound, ties by delivery ID.

package dates

import (
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dfs"
)

// MaxPasses bounds the propagate/check cycle.
const MaxPasses = 2

// Processed holds the date ranges of one delivery.
type Processed struct {
	// ExpIn/ExpOut come from DateIn/DateOut alone.
	ExpIn  Range
	ExpOut Range

	// CompIn/CompOut are the graph-consistent ranges after propagation.
	CompIn  Range
	CompOut Range

	// ImplausibleIn/ImplausibleOut flag explicit dates excluded from derivation.
	ImplausibleIn  bool
	ImplausibleOut bool
}

// processor carries per-call state; nothing survives Process.
type processor struct {
	snap   *core.Snapshot
	ids    []string
	ranges map[string]*Processed
}

// Process computes explicit and propagated date ranges for every delivery of s.
//
// Implementation:
//   - Stage 1: Explicit ranges and intra-delivery plausibility.
//   - Stage 2: Seed computed ranges, propagate forward then backward.
//   - Stage 3: Inter-delivery plausibility; repeat Stage 2-3 once if it flagged anything.
//
// Errors:
//   - None. Unknown or malformed dates are unbounded, contradictions surface as flags.
//
// Complexity:
//   - Time O(MaxPasses·(D log D + C)), Space O(D).
func Process(s *core.Snapshot) map[string]Processed {
	out := make(map[string]Processed)
	if s == nil {
		return out
	}

	p := &processor{snap: s, ranges: make(map[string]*Processed, s.DeliveryCount())}
	p.initExplicit()

	passes := 0
	for {
		passes++
		p.seed()
		p.propagateForward()
		p.propagateBackward()
		if flagged := p.checkInterPlausibility(); flagged == 0 || passes == MaxPasses {
			break
		}
	}

	implausible := 0
	for _, id := range p.ids {
		r := p.ranges[id]
		if r.ImplausibleIn || r.ImplausibleOut {
			implausible++
		}
		out[id] = *r
	}

	slog.Debug("delivery dates processed",
		slog.Int("deliveries", len(p.ids)),
		slog.Int("passes", passes),
		slog.Int("implausible", implausible),
	)

	return out
}

// initExplicit parses dates and applies the intra-delivery check.
func (p *processor) initExplicit() {
	for _, d := range p.snap.Deliveries() {
		r := &Processed{
			ExpIn:  Explicit(d.DateIn),
			ExpOut: Explicit(d.DateOut),
		}
		// Dispatched after arrival: neither date can be trusted.
		if r.ExpOut.Lower > r.ExpIn.Upper {
			r.ImplausibleIn, r.ImplausibleOut = true, true
		}
		p.ids = append(p.ids, d.ID)
		p.ranges[d.ID] = r
	}
}

// seed resets computed ranges from the plausible explicit ranges.
func (p *processor) seed() {
	for _, id := range p.ids {
		r := p.ranges[id]
		r.CompIn, r.CompOut = r.ExpIn, r.ExpOut
		if r.ImplausibleIn {
			r.CompIn = Unbounded()
		}
		if r.ImplausibleOut {
			r.CompOut = Unbounded()
		}
		r.CompIn.Lower = math.Max(r.CompIn.Lower, r.CompOut.Lower)
		r.CompOut.Upper = math.Min(r.CompOut.Upper, r.CompIn.Upper)
	}
}

// propagateForward raises lower bounds downstream, roots by descending CompIn.Lower.
func (p *processor) propagateForward() {
	roots := p.sortedIDs(func(a, b *Processed) bool { return a.CompIn.Lower > b.CompIn.Lower })

	w := dfs.NewWalker[string]()
	w.Walk(func(id string) []string {
		x := p.ranges[id]
		st := p.snap.Station(p.snap.Delivery(id).Target)
		if st == nil {
			return nil
		}
		next := st.ConnectedTo(id)
		for _, yid := range next {
			y, ok := p.ranges[yid]
			if !ok {
				continue
			}
			y.CompOut.Lower = math.Max(y.CompOut.Lower, x.CompIn.Lower)
			y.CompIn.Lower = math.Max(y.CompIn.Lower, y.CompOut.Lower)
		}

		return next
	}, roots...)
}

// propagateBackward lowers upper bounds upstream, roots by ascending CompOut.Upper.
func (p *processor) propagateBackward() {
	roots := p.sortedIDs(func(a, b *Processed) bool { return a.CompOut.Upper < b.CompOut.Upper })

	w := dfs.NewWalker[string]()
	w.Walk(func(id string) []string {
		y := p.ranges[id]
		st := p.snap.Station(p.snap.Delivery(id).Source)
		if st == nil {
			return nil
		}
		prev := st.ConnectedFrom(id)
		for _, xid := range prev {
			x, ok := p.ranges[xid]
			if !ok {
				continue
			}
			x.CompIn.Upper = math.Min(x.CompIn.Upper, y.CompOut.Upper)
			x.CompOut.Upper = math.Min(x.CompOut.Upper, x.CompIn.Upper)
		}

		return prev
	}, roots...)
}

// checkInterPlausibility flags explicit dates that fall outside their computed
// range and returns how many legs were newly flagged.
func (p *processor) checkInterPlausibility() int {
	flagged := 0
	for _, id := range p.ids {
		r := p.ranges[id]
		if !r.ImplausibleIn && !r.ExpIn.IsUnbounded() && r.ExpIn.Disjoint(r.CompIn) {
			r.ImplausibleIn = true
			flagged++
		}
		if !r.ImplausibleOut && !r.ExpOut.IsUnbounded() && r.ExpOut.Disjoint(r.CompOut) {
			r.ImplausibleOut = true
			flagged++
		}
	}

	return flagged
}

// sortedIDs returns delivery IDs ordered by less, ties broken by ID.
func (p *processor) sortedIDs(less func(a, b *Processed) bool) []string {
	ids := append([]string(nil), p.ids...)
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := p.ranges[ids[i]], p.ranges[ids[j]]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return ids[i] < ids[j]
	})

	return ids
}
