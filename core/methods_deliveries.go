// File: methods_deliveries.go
// Role: Delivery lifecycle & queries.
//
// Determinism:
//   - Deliveries() returns records sorted by ID ascending.
//   - Station Incoming/Outgoing keep AddDelivery call order.
package core

import (
	"fmt"
	"sort"
)

// AddDelivery inserts a delivery source→target and appends its ID to the
// source's Outgoing and the target's Incoming lists.
//
// Implementation:
//   - Stage 1: Reject an empty ID.
//   - Stage 2: Under the write lock, reject a duplicate ID and resolve both stations.
//   - Stage 3: Store the record, update adjacency and renew the version.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID, ErrStationNotFound.
//
// Complexity:
//   - Time O(len(opts)) amortized, Space O(1).
func (s *Snapshot) AddDelivery(id, source, target string, opts ...DeliveryOption) (*Delivery, error) {
	if id == "" {
		return nil, fmt.Errorf("AddDelivery: %w", ErrEmptyID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deliveries[id]; ok {
		return nil, fmt.Errorf("AddDelivery(%s): %w", id, ErrDuplicateID)
	}
	src, ok := s.stations[source]
	if !ok {
		return nil, fmt.Errorf("AddDelivery(%s): source %s: %w", id, source, ErrStationNotFound)
	}
	dst, ok := s.stations[target]
	if !ok {
		return nil, fmt.Errorf("AddDelivery(%s): target %s: %w", id, target, ErrStationNotFound)
	}

	d := &Delivery{ID: id, Source: source, Target: target}
	for _, opt := range opts {
		opt(d)
	}
	s.deliveries[id] = d
	src.Outgoing = append(src.Outgoing, id)
	dst.Incoming = append(dst.Incoming, id)
	s.version = newVersion()

	return d, nil
}

// SetDeliveryDates replaces the arrival and dispatch dates of a delivery.
//
// Errors:
//   - ErrDeliveryNotFound.
func (s *Snapshot) SetDeliveryDates(id, dateIn, dateOut string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deliveries[id]
	if !ok {
		return fmt.Errorf("SetDeliveryDates(%s): %w", id, ErrDeliveryNotFound)
	}
	d.DateIn, d.DateOut = dateIn, dateOut
	s.version = newVersion()

	return nil
}

// Delivery returns the delivery with the given ID, or nil if absent.
// Complexity: O(1)
func (s *Snapshot) Delivery(id string) *Delivery {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.deliveries[id]
}

// Deliveries returns all deliveries sorted by ID.
// Complexity: O(D log D)
func (s *Snapshot) Deliveries() []*Delivery {
	s.mu.RLock()
	out := make([]*Delivery, 0, len(s.deliveries))
	for _, d := range s.deliveries {
		out = append(out, d)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// DeliveryCount returns the number of deliveries.
func (s *Snapshot) DeliveryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.deliveries)
}
