// Package tracing defines settings, sentinel errors and result types for the
// scoring and trace engine.
package tracing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/fcltrace/core"
)

var (
	// ErrSnapshotNil is returned when a nil *core.Snapshot is passed to the engine.
	ErrSnapshotNil = errors.New("tracing: snapshot is nil")

	// ErrUnknownTraceType is returned for an out-of-range CrossContTraceType.
	ErrUnknownTraceType = errors.New("tracing: unknown cross-contamination trace type")
)

// CrossContTraceType selects how dates gate cross-contamination fan-out.
type CrossContTraceType int

const (
	// UseExplicitDeliveryDates compares the dates written on the deliveries.
	UseExplicitDeliveryDates CrossContTraceType = iota

	// UseInferredDeliveryDatesLimits compares the propagated date ranges.
	UseInferredDeliveryDatesLimits

	// DoNotConsiderDeliveryDates lets every inbound lot reach every outbound lot.
	DoNotConsiderDeliveryDates
)

var traceTypeNames = [...]string{
	"USE_EXPLICIT_DELIVERY_DATES",
	"USE_INFERED_DELIVERY_DATES_LIMITS",
	"DO_NOT_CONSIDER_DELIVERY_DATES",
}

// String returns the settings-file name of t.
func (t CrossContTraceType) String() string {
	if !t.valid() {
		return fmt.Sprintf("CrossContTraceType(%d)", int(t))
	}

	return traceTypeNames[t]
}

func (t CrossContTraceType) valid() bool {
	return t >= UseExplicitDeliveryDates && t <= DoNotConsiderDeliveryDates
}

// usesDates reports whether date ranges gate cross-contamination.
func (t CrossContTraceType) usesDates() bool {
	return t != DoNotConsiderDeliveryDates
}

// ParseCrossContTraceType maps a case-insensitive settings name to a type.
func ParseCrossContTraceType(s string) (CrossContTraceType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range traceTypeNames {
		if n == name {
			return CrossContTraceType(i), nil
		}
	}

	return 0, fmt.Errorf("ParseCrossContTraceType(%q): %w", s, ErrUnknownTraceType)
}

// Settings are the global tracing settings, passed explicitly to every call.
type Settings struct {
	CrossContTraceType CrossContTraceType
}

// DefaultSettings returns Settings using inferred date limits.
func DefaultSettings() Settings {
	return Settings{CrossContTraceType: UseInferredDeliveryDatesLimits}
}

// Validate returns ErrUnknownTraceType for an out-of-range trace type.
func (s Settings) Validate() error {
	if !s.CrossContTraceType.valid() {
		return fmt.Errorf("Settings: %s: %w", s.CrossContTraceType, ErrUnknownTraceType)
	}

	return nil
}

// StationScore is the scoring output of one station.
type StationScore struct {
	Score      float64
	CommonLink bool
}

// ScoreResult holds normalized outbreak scores for every station and delivery.
type ScoreResult struct {
	Stations   map[string]StationScore
	Deliveries map[string]float64

	// Outbreaks counts the outbreak stations that seeded a walk.
	Outbreaks int

	// MaxScore is the largest station or delivery score of the pass.
	MaxScore float64
}

// Apply writes Score and CommonLink into the snapshot records.
func (r *ScoreResult) Apply(s *core.Snapshot) {
	for id, sc := range r.Stations {
		if st := s.Station(id); st != nil {
			st.Score, st.CommonLink = sc.Score, sc.CommonLink
		}
	}
	for id, sc := range r.Deliveries {
		if d := s.Delivery(id); d != nil {
			d.Score = sc
		}
	}
}

// CommonLinks returns the IDs of stations reachable from every outbreak, sorted.
func (r *ScoreResult) CommonLinks() []string {
	var ids []string
	for id, sc := range r.Stations {
		if sc.CommonLink {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// TraceFlags is the trace output of one station or delivery.
type TraceFlags struct {
	Forward  bool
	Backward bool
}

// TraceResult holds forward/backward flags for every station and delivery.
type TraceResult struct {
	Stations   map[string]TraceFlags
	Deliveries map[string]TraceFlags
}

// Apply writes Forward and Backward into the snapshot records.
func (r *TraceResult) Apply(s *core.Snapshot) {
	for id, f := range r.Stations {
		if st := s.Station(id); st != nil {
			st.Forward, st.Backward = f.Forward, f.Backward
		}
	}
	for id, f := range r.Deliveries {
		if d := s.Delivery(id); d != nil {
			d.Forward, d.Backward = f.Forward, f.Backward
		}
	}
}

// ForwardStations returns the IDs of forward-marked stations, sorted.
func (r *TraceResult) ForwardStations() []string {
	return collect(r.Stations, func(f TraceFlags) bool { return f.Forward })
}

// BackwardStations returns the IDs of backward-marked stations, sorted.
func (r *TraceResult) BackwardStations() []string {
	return collect(r.Stations, func(f TraceFlags) bool { return f.Backward })
}

// ForwardDeliveries returns the IDs of forward-marked deliveries, sorted.
func (r *TraceResult) ForwardDeliveries() []string {
	return collect(r.Deliveries, func(f TraceFlags) bool { return f.Forward })
}

// BackwardDeliveries returns the IDs of backward-marked deliveries, sorted.
func (r *TraceResult) BackwardDeliveries() []string {
	return collect(r.Deliveries, func(f TraceFlags) bool { return f.Backward })
}

func collect(m map[string]TraceFlags, keep func(TraceFlags) bool) []string {
	var ids []string
	for id, f := range m {
		if keep(f) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}
