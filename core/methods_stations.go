// File: methods_stations.go
// Role: Station lifecycle & queries.
//
// Determinism:
//   - Stations() and StationIDs() return records sorted by ID ascending.
//
// Concurrency:
//   - Station catalog protected by mu.
package core

import (
	"fmt"
	"sort"
)

// AddStation inserts a new station with the given options applied.
//
// Implementation:
//   - Stage 1: Reject an empty ID.
//   - Stage 2: Under the write lock, reject a duplicate ID.
//   - Stage 3: Build the record, apply options, store it and renew the version.
//
// Returns:
//   - *Station: the stored record (callers may keep the pointer).
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func (s *Snapshot) AddStation(id string, opts ...StationOption) (*Station, error) {
	if id == "" {
		return nil, fmt.Errorf("AddStation: %w", ErrEmptyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stations[id]; ok {
		return nil, fmt.Errorf("AddStation(%s): %w", id, ErrDuplicateID)
	}

	st := &Station{ID: id}
	for _, opt := range opts {
		opt(st)
	}
	s.stations[id] = st
	s.version = newVersion()

	return st, nil
}

// Station returns the station with the given ID, or nil if absent.
// Complexity: O(1)
func (s *Snapshot) Station(id string) *Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stations[id]
}

// HasStation reports whether a station with the given ID exists.
func (s *Snapshot) HasStation(id string) bool {
	return s.Station(id) != nil
}

// Stations returns all stations sorted by ID.
// Complexity: O(S log S)
func (s *Snapshot) Stations() []*Station {
	s.mu.RLock()
	out := make([]*Station, 0, len(s.stations))
	for _, st := range s.stations {
		out = append(out, st)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// StationIDs returns all station IDs sorted ascending.
func (s *Snapshot) StationIDs() []string {
	sts := s.Stations()
	ids := make([]string, len(sts))
	for i, st := range sts {
		ids[i] = st.ID
	}

	return ids
}

// StationCount returns the number of stations.
func (s *Snapshot) StationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.stations)
}

// AddConnection records that inbound delivery from was routed into outbound
// delivery to at the given station. Adding an existing pair is a no-op.
//
// Implementation:
//   - Stage 1: Resolve station and both deliveries.
//   - Stage 2: Verify from arrives at the station and to leaves it.
//   - Stage 3: Append the pair unless already present; renew the version.
//
// Errors:
//   - ErrStationNotFound, ErrDeliveryNotFound, ErrConnectionMismatch.
//
// Complexity:
//   - Time O(len(Connections)).
func (s *Snapshot) AddConnection(stationID, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stations[stationID]
	if !ok {
		return fmt.Errorf("AddConnection(%s): %w", stationID, ErrStationNotFound)
	}
	in, ok := s.deliveries[from]
	if !ok {
		return fmt.Errorf("AddConnection(%s): inbound %s: %w", stationID, from, ErrDeliveryNotFound)
	}
	out, ok := s.deliveries[to]
	if !ok {
		return fmt.Errorf("AddConnection(%s): outbound %s: %w", stationID, to, ErrDeliveryNotFound)
	}
	if in.Target != stationID || out.Source != stationID {
		return fmt.Errorf("AddConnection(%s): %s→%s: %w", stationID, from, to, ErrConnectionMismatch)
	}

	for _, c := range st.Connections {
		if c.From == from && c.To == to {
			return nil
		}
	}
	st.Connections = append(st.Connections, Connection{From: from, To: to})
	s.version = newVersion()

	return nil
}
