// Package core provides the in-memory food-supply-chain Snapshot consumed by
// the date processor and the tracing engine.
//
// A Snapshot G = (S, D) holds:
//
//   - Stations: production, processing or retail sites. Each station keeps
//     ordered Incoming/Outgoing delivery IDs and a set of Connections.
//   - Deliveries: directed lot transfers Source→Target with optional
//     dispatch (DateOut) and arrival (DateIn) dates in YYYY-MM-DD form.
//   - Connections: inbound→outbound delivery pairs recorded at the station
//     that routes between them ("this lot went into that lot").
//
// Flags set by the caller gate the algorithms:
//
//	– Outbreak            station is a confirmed contamination case
//	– Observed            NONE | FORWARD | BACKWARD | FULL trace root
//	– CrossContamination  any inbound lot may reach any outbound lot
//	– KillContamination   propagation stops at this station/delivery
//	– Contained/Invisible element is hidden from traversal
//
// Output fields (Score, CommonLink, Forward, Backward) are written back by
// the tracing results' Apply methods.
//
// Versioning:
//
//	Every Snapshot carries a version token (a UUID). Topology and date
//	mutations made through Snapshot methods issue a fresh token, so caches
//	keyed by Version() invalidate automatically. Callers that edit the
//	exported slices or date fields directly must call Touch().
//
// Concurrency:
//
//	Snapshot catalogs are guarded by a sync.RWMutex. Algorithms read station
//	and delivery records without locking; callers must not mutate a snapshot
//	while a computation over it is running.
//
// Core Methods:
//
//	AddStation(id, opts...)              (*Station, error)  // O(1)
//	AddDelivery(id, from, to, opts...)   (*Delivery, error) // O(1)
//	AddConnection(station, in, out)      error              // O(deg)
//	SetDeliveryDates(id, in, out)        error              // O(1)
//	Station(id) / Delivery(id)           lookups            // O(1)
//	Stations() / Deliveries()            sorted by ID       // O(n log n)
//	Clone()                              deep copy          // O(S+D+C)
//	Stats()                              counters           // O(S+D)
package core
