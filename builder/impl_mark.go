// SPDX-License-Identifier: MIT
// Package: fcltrace/builder
//
// impl_mark.go - decorators that set station flags on an existing topology.
//
// Stations are addressed by index through cfg.idFn, so decorators compose
// with any topology built under the same options. A missing station yields
// core.ErrStationNotFound.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fcltrace/core"
)

// markStations applies set to the stations at the given indices.
func markStations(method string, idx []int, set func(*core.Station)) Constructor {
	return func(s *core.Snapshot, cfg builderConfig) error {
		for _, i := range idx {
			id := cfg.idFn(i)
			st := s.Station(id)
			if st == nil {
				return fmt.Errorf("%s: station %s: %w", method, id, core.ErrStationNotFound)
			}
			set(st)
		}

		return nil
	}
}

// MarkOutbreaks flags the stations at idx as outbreaks.
func MarkOutbreaks(idx ...int) Constructor {
	return markStations(MethodMarkOutbreaks, idx, func(st *core.Station) { st.Outbreak = true })
}

// MarkObserved sets Observed = o on the stations at idx.
func MarkObserved(o core.ObservedType, idx ...int) Constructor {
	return markStations(MethodMarkObserved, idx, func(st *core.Station) { st.Observed = o })
}

// MarkCrossContamination flags the stations at idx as mixing their lots.
func MarkCrossContamination(idx ...int) Constructor {
	return markStations(MethodMarkCrossContamination, idx, func(st *core.Station) { st.CrossContamination = true })
}

// MarkKillContamination flags the stations at idx as stopping contamination.
func MarkKillContamination(idx ...int) Constructor {
	return markStations(MethodMarkKillContamination, idx, func(st *core.Station) { st.KillContamination = true })
}

// RandomOutbreaks flags k distinct stations, drawn uniformly from the
// snapshot's stations in ID order, as outbreaks.
//
// Contract:
//   - 0 ≤ k ≤ station count (else ErrTooFewStations).
//   - cfg.rng must be non-nil unless k is 0 or the station count.
func RandomOutbreaks(k int) Constructor {
	return func(s *core.Snapshot, cfg builderConfig) error {
		ids := s.StationIDs()
		if k < 0 || k > len(ids) {
			return fmt.Errorf("%s: k=%d not in [0,%d]: %w", MethodRandomOutbreaks, k, len(ids), ErrTooFewStations)
		}
		if k == len(ids) {
			for _, id := range ids {
				s.Station(id).Outbreak = true
			}
			return nil
		}
		if k == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomOutbreaks, ErrNeedRandSource)
		}
		for _, i := range cfg.rng.Perm(len(ids))[:k] {
			s.Station(ids[i]).Outbreak = true
		}

		return nil
	}
}
