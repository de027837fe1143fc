// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Version token and read-only summary getters.
// Policy:
//   - No algorithms here.
//   - Version tokens come from github.com/google/uuid; only equality matters.

package core

import "github.com/google/uuid"

// newVersion returns a fresh opaque version token.
func newVersion() string {
	return uuid.NewString()
}

// Version returns the current version token of the snapshot.
//
// Behavior highlights:
//   - Renewed by AddStation, AddDelivery, AddConnection, SetDeliveryDates and Touch.
//   - Unchanged by flag edits (Outbreak, Observed, Kill/Cross, Contained, Invisible)
//     and by output writes.
//
// Complexity:
//   - Time O(1), Space O(1).
func (s *Snapshot) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Touch renews the version token. Call it after editing Incoming, Outgoing,
// Connections or date fields directly on the records.
func (s *Snapshot) Touch() {
	s.mu.Lock()
	s.version = newVersion()
	s.mu.Unlock()
}

// SnapshotStats is a read-only summary of a Snapshot.
type SnapshotStats struct {
	StationCount    int
	DeliveryCount   int
	ConnectionCount int

	OutbreakCount      int // stations with Outbreak
	ObservedCount      int // stations and deliveries with Observed != NONE
	KillCount          int // stations and deliveries with KillContamination
	CrossCount         int // stations and deliveries with CrossContamination
	HiddenStationCount int // stations Contained or Invisible
	DatedDeliveryCount int // deliveries with a non-empty DateIn or DateOut
}

// Stats returns element and flag counters.
//
// Determinism:
//   - Deterministic for a fixed snapshot state.
//
// Complexity:
//   - Time O(S + D), Space O(1) plus the returned struct.
func (s *Snapshot) Stats() *SnapshotStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := SnapshotStats{
		StationCount:  len(s.stations),
		DeliveryCount: len(s.deliveries),
	}
	for _, st := range s.stations {
		stats.ConnectionCount += len(st.Connections)
		if st.Outbreak {
			stats.OutbreakCount++
		}
		if st.Observed != ObservedNone {
			stats.ObservedCount++
		}
		if st.KillContamination {
			stats.KillCount++
		}
		if st.CrossContamination {
			stats.CrossCount++
		}
		if st.Contained || st.Invisible {
			stats.HiddenStationCount++
		}
	}
	for _, d := range s.deliveries {
		if d.Observed != ObservedNone {
			stats.ObservedCount++
		}
		if d.KillContamination {
			stats.KillCount++
		}
		if d.CrossContamination {
			stats.CrossCount++
		}
		if d.DateIn != "" || d.DateOut != "" {
			stats.DatedDeliveryCount++
		}
	}

	return &stats
}
