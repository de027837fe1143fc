// File: methods_clone.go
// Role: Cloning and output reset.
// Determinism:
//   - Clone carries over the version token: equal content, equal cache key.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source snapshot.

package core

// Clone returns a deep copy of the Snapshot: stations, deliveries, adjacency
// lists, connections, flags and outputs.
//
// Determinism & Identity:
//   - The clone keeps the source's version token; the first mutation of
//     either copy renews that copy's token only.
//
// Complexity: O(S + D + C)
func (s *Snapshot) Clone() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone := &Snapshot{
		version:    s.version,
		stations:   make(map[string]*Station, len(s.stations)),
		deliveries: make(map[string]*Delivery, len(s.deliveries)),
	}

	var (
		id string
		st *Station
		d  *Delivery
	)
	for id, st = range s.stations {
		cp := *st
		cp.Incoming = append([]string(nil), st.Incoming...)
		cp.Outgoing = append([]string(nil), st.Outgoing...)
		cp.Connections = append([]Connection(nil), st.Connections...)
		clone.stations[id] = &cp
	}
	for id, d = range s.deliveries {
		cp := *d
		clone.deliveries[id] = &cp
	}

	return clone
}

// ResetOutputs zeroes Score, CommonLink, Forward and Backward on every
// station and delivery. Inputs and the version token are untouched.
// Complexity: O(S + D)
func (s *Snapshot) ResetOutputs() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.stations {
		st.Score, st.CommonLink, st.Forward, st.Backward = 0, false, false, false
	}
	for _, d := range s.deliveries {
		d.Score, d.Forward, d.Backward = 0, false, false
	}
}
