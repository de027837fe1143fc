// SPDX-License-Identifier: MIT
// Package core declares Station, Delivery, Connection, ObservedType, the
// Snapshot container, functional options and sentinel errors.
//
// Errors:
//
//	ErrEmptyID             - station or delivery ID is the empty string.
//	ErrDuplicateID         - an element with the same ID already exists.
//	ErrStationNotFound     - requested station does not exist.
//	ErrDeliveryNotFound    - requested delivery does not exist.
//	ErrConnectionMismatch  - connection endpoints do not route through the station.
//	ErrUnknownObservedType - ParseObservedType got an unsupported name.
package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel errors for snapshot construction.
var (
	// ErrEmptyID indicates that a station or delivery ID is empty.
	ErrEmptyID = errors.New("core: id is empty")

	// ErrDuplicateID indicates that a station or delivery ID is already taken.
	ErrDuplicateID = errors.New("core: duplicate id")

	// ErrStationNotFound indicates an operation referenced a non-existent station.
	ErrStationNotFound = errors.New("core: station not found")

	// ErrDeliveryNotFound indicates an operation referenced a non-existent delivery.
	ErrDeliveryNotFound = errors.New("core: delivery not found")

	// ErrConnectionMismatch indicates a connection whose inbound delivery does not
	// arrive at the station or whose outbound delivery does not leave it.
	ErrConnectionMismatch = errors.New("core: connection does not route through station")

	// ErrUnknownObservedType indicates an unsupported observed-type name.
	ErrUnknownObservedType = errors.New("core: unknown observed type")
)

// ObservedType selects which trace directions start at an observed element.
type ObservedType int

const (
	ObservedNone     ObservedType = iota // not a trace root
	ObservedForward                      // trace downstream only
	ObservedBackward                     // trace upstream only
	ObservedFull                         // trace both directions
)

var observedNames = [...]string{"NONE", "FORWARD", "BACKWARD", "FULL"}

// String returns the upper-case name used in fixtures ("NONE", "FORWARD", ...).
func (o ObservedType) String() string {
	if o < ObservedNone || o > ObservedFull {
		return fmt.Sprintf("ObservedType(%d)", int(o))
	}

	return observedNames[o]
}

// Forward reports whether o starts a forward trace (FORWARD or FULL).
func (o ObservedType) Forward() bool { return o == ObservedForward || o == ObservedFull }

// Backward reports whether o starts a backward trace (BACKWARD or FULL).
func (o ObservedType) Backward() bool { return o == ObservedBackward || o == ObservedFull }

// ParseObservedType maps a case-insensitive name to an ObservedType.
// The empty string maps to ObservedNone.
func ParseObservedType(s string) (ObservedType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return ObservedNone, nil
	}
	for i, n := range observedNames {
		if n == name {
			return ObservedType(i), nil
		}
	}

	return ObservedNone, fmt.Errorf("ParseObservedType(%q): %w", s, ErrUnknownObservedType)
}

// Connection routes the inbound delivery From to the outbound delivery To
// at the station that owns it.
type Connection struct {
	// From is the ID of a delivery arriving at the station.
	From string

	// To is the ID of a delivery leaving the station.
	To string
}

// Station is a node of the supply chain.
//
// Incoming/Outgoing keep insertion order. Score, CommonLink, Forward and
// Backward are outputs; everything else is input.
type Station struct {
	// ID uniquely identifies this Station within its Snapshot.
	ID string

	// Incoming lists IDs of deliveries whose Target is this station.
	Incoming []string

	// Outgoing lists IDs of deliveries whose Source is this station.
	Outgoing []string

	// Connections records which inbound delivery fed which outbound delivery.
	Connections []Connection

	CrossContamination bool
	KillContamination  bool
	Outbreak           bool
	Observed           ObservedType

	// Contained and Invisible hide the station from traversal.
	Contained bool
	Invisible bool

	Score      float64
	CommonLink bool
	Forward    bool
	Backward   bool
}

// ConnectedFrom returns the inbound delivery IDs routed to outbound delivery to,
// in connection order.
// Complexity: O(len(Connections)).
func (s *Station) ConnectedFrom(to string) []string {
	var out []string
	for _, c := range s.Connections {
		if c.To == to {
			out = append(out, c.From)
		}
	}

	return out
}

// ConnectedTo returns the outbound delivery IDs fed by inbound delivery from,
// in connection order.
// Complexity: O(len(Connections)).
func (s *Station) ConnectedTo(from string) []string {
	var out []string
	for _, c := range s.Connections {
		if c.From == from {
			out = append(out, c.To)
		}
	}

	return out
}

// Delivery is a directed lot transfer Source→Target.
//
// DateOut is the dispatch date at Source, DateIn the arrival date at Target.
// Both are optional YYYY-MM-DD strings; anything else is treated as unknown.
type Delivery struct {
	// ID uniquely identifies this Delivery within its Snapshot.
	ID string

	// Source is the ID of the sending station.
	Source string

	// Target is the ID of the receiving station.
	Target string

	DateIn  string
	DateOut string

	CrossContamination bool
	KillContamination  bool
	Observed           ObservedType
	Invisible          bool

	Score    float64
	Forward  bool
	Backward bool
}

// StationOption configures a Station when it is added.
type StationOption func(*Station)

// WithOutbreak marks the station as a confirmed outbreak case.
func WithOutbreak() StationOption {
	return func(s *Station) { s.Outbreak = true }
}

// WithCrossContamination lets any inbound delivery reach any outbound delivery.
func WithCrossContamination() StationOption {
	return func(s *Station) { s.CrossContamination = true }
}

// WithKillContamination stops propagation through the station.
func WithKillContamination() StationOption {
	return func(s *Station) { s.KillContamination = true }
}

// WithObserved makes the station a trace root of the given type.
func WithObserved(o ObservedType) StationOption {
	return func(s *Station) { s.Observed = o }
}

// WithContained hides the station from scoring.
func WithContained() StationOption {
	return func(s *Station) { s.Contained = true }
}

// WithInvisible hides the station from traversal.
func WithInvisible() StationOption {
	return func(s *Station) { s.Invisible = true }
}

// DeliveryOption configures a Delivery when it is added.
type DeliveryOption func(*Delivery)

// WithDates sets the arrival (in) and dispatch (out) date strings.
func WithDates(dateIn, dateOut string) DeliveryOption {
	return func(d *Delivery) { d.DateIn, d.DateOut = dateIn, dateOut }
}

// WithDeliveryCrossContamination flags the delivery as cross-contaminating.
func WithDeliveryCrossContamination() DeliveryOption {
	return func(d *Delivery) { d.CrossContamination = true }
}

// WithDeliveryKillContamination stops propagation along the delivery.
func WithDeliveryKillContamination() DeliveryOption {
	return func(d *Delivery) { d.KillContamination = true }
}

// WithDeliveryObserved makes the delivery a trace root of the given type.
func WithDeliveryObserved(o ObservedType) DeliveryOption {
	return func(d *Delivery) { d.Observed = o }
}

// WithDeliveryInvisible hides the delivery from traversal.
func WithDeliveryInvisible() DeliveryOption {
	return func(d *Delivery) { d.Invisible = true }
}

// Snapshot is the station/delivery graph of one analysis pass.
//
// mu guards the catalogs and the version token. Station and Delivery records
// are handed out by pointer; see the package doc for the mutation contract.
type Snapshot struct {
	mu sync.RWMutex

	version    string               // cache key, renewed on topology/date mutation
	stations   map[string]*Station  // station ID → Station
	deliveries map[string]*Delivery // delivery ID → Delivery
}

// NewSnapshot creates an empty Snapshot with a fresh version token.
// Complexity: O(1)
func NewSnapshot() *Snapshot {
	return &Snapshot{
		version:    newVersion(),
		stations:   make(map[string]*Station),
		deliveries: make(map[string]*Delivery),
	}
}
