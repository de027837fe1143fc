package fixture

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dates"
	"github.com/katalvlaran/fcltrace/tracing"
)

// Snapshot builds a core.Snapshot from the document.
//
// Implementation:
//   - Stage 1: Add stations with their flags.
//   - Stage 2: Add deliveries (sources and targets must exist).
//   - Stage 3: Add connections (both deliveries must route through the station).
//
// Errors: core sentinels (ErrEmptyID, ErrDuplicateID, ErrStationNotFound,
// ErrDeliveryNotFound, ErrConnectionMismatch, ErrUnknownObservedType), wrapped
// with the offending list position.
func (d *Document) Snapshot() (*core.Snapshot, error) {
	s := core.NewSnapshot()

	// 1. Stations
	for i, sd := range d.Stations {
		observed, err := core.ParseObservedType(sd.Observed)
		if err != nil {
			return nil, fmt.Errorf("stations[%d]: %w", i, err)
		}
		opts := []core.StationOption{core.WithObserved(observed)}
		if sd.Outbreak {
			opts = append(opts, core.WithOutbreak())
		}
		if sd.CrossContamination {
			opts = append(opts, core.WithCrossContamination())
		}
		if sd.KillContamination {
			opts = append(opts, core.WithKillContamination())
		}
		if sd.Contained {
			opts = append(opts, core.WithContained())
		}
		if sd.Invisible {
			opts = append(opts, core.WithInvisible())
		}
		if _, err = s.AddStation(sd.ID, opts...); err != nil {
			return nil, fmt.Errorf("stations[%d]: %w", i, err)
		}
	}

	// 2. Deliveries
	for i, dd := range d.Deliveries {
		observed, err := core.ParseObservedType(dd.Observed)
		if err != nil {
			return nil, fmt.Errorf("deliveries[%d]: %w", i, err)
		}
		opts := []core.DeliveryOption{
			core.WithDates(dd.DateIn, dd.DateOut),
			core.WithDeliveryObserved(observed),
		}
		if dd.CrossContamination {
			opts = append(opts, core.WithDeliveryCrossContamination())
		}
		if dd.KillContamination {
			opts = append(opts, core.WithDeliveryKillContamination())
		}
		if dd.Invisible {
			opts = append(opts, core.WithDeliveryInvisible())
		}
		if _, err = s.AddDelivery(dd.ID, dd.Source, dd.Target, opts...); err != nil {
			return nil, fmt.Errorf("deliveries[%d]: %w", i, err)
		}
	}

	// 3. Connections
	for i, sd := range d.Stations {
		for j, c := range sd.Connections {
			if err := s.AddConnection(sd.ID, c.From, c.To); err != nil {
				return nil, fmt.Errorf("stations[%d].connections[%d]: %w", i, j, err)
			}
		}
	}

	return s, nil
}

// TraceSettings returns the document's settings, or def when the document
// names no trace type.
func (d *Document) TraceSettings(def tracing.Settings) (tracing.Settings, error) {
	if d.Settings == nil || strings.TrimSpace(d.Settings.CrossContTraceType) == "" {
		return def, nil
	}
	t, err := tracing.ParseCrossContTraceType(d.Settings.CrossContTraceType)
	if err != nil {
		return tracing.Settings{}, fmt.Errorf("settings.cross_cont_trace_type: %w", err)
	}

	return tracing.Settings{CrossContTraceType: t}, nil
}

// FromSnapshot renders the inputs of s as a Document, stations and
// deliveries in ID order. settings may be nil.
func FromSnapshot(s *core.Snapshot, settings *tracing.Settings) *Document {
	doc := &Document{}
	if settings != nil {
		doc.Settings = &SettingsDoc{CrossContTraceType: settings.CrossContTraceType.String()}
	}

	for _, st := range s.Stations() {
		sd := StationDoc{
			ID:                 st.ID,
			Outbreak:           st.Outbreak,
			CrossContamination: st.CrossContamination,
			KillContamination:  st.KillContamination,
			Contained:          st.Contained,
			Invisible:          st.Invisible,
		}
		if st.Observed != core.ObservedNone {
			sd.Observed = st.Observed.String()
		}
		for _, c := range st.Connections {
			sd.Connections = append(sd.Connections, ConnectionDoc{From: c.From, To: c.To})
		}
		doc.Stations = append(doc.Stations, sd)
	}

	for _, d := range s.Deliveries() {
		dd := DeliveryDoc{
			ID:                 d.ID,
			Source:             d.Source,
			Target:             d.Target,
			DateOut:            d.DateOut,
			DateIn:             d.DateIn,
			CrossContamination: d.CrossContamination,
			KillContamination:  d.KillContamination,
			Invisible:          d.Invisible,
		}
		if d.Observed != core.ObservedNone {
			dd.Observed = d.Observed.String()
		}
		doc.Deliveries = append(doc.Deliveries, dd)
	}

	return doc
}

// NewReport merges score and trace results into one Report. Either result
// may be nil; its fields are then omitted.
func NewReport(settings tracing.Settings, scores *tracing.ScoreResult, tr *tracing.TraceResult) *Report {
	rep := &Report{Settings: SettingsDoc{CrossContTraceType: settings.CrossContTraceType.String()}}

	stationIDs := make(map[string]struct{})
	deliveryIDs := make(map[string]struct{})
	if scores != nil {
		outbreaks, maxScore := scores.Outbreaks, scores.MaxScore
		rep.Outbreaks, rep.MaxScore = &outbreaks, &maxScore
		addKeys(stationIDs, scores.Stations)
		addKeys(deliveryIDs, scores.Deliveries)
	}
	if tr != nil {
		addKeys(stationIDs, tr.Stations)
		addKeys(deliveryIDs, tr.Deliveries)
	}

	for _, id := range sortedKeys(stationIDs) {
		sd := StationResultDoc{ID: id}
		if scores != nil {
			sc := scores.Stations[id]
			sd.Score, sd.CommonLink = &sc.Score, sc.CommonLink
		}
		if tr != nil {
			f := tr.Stations[id]
			sd.Forward, sd.Backward = f.Forward, f.Backward
		}
		rep.Stations = append(rep.Stations, sd)
	}

	for _, id := range sortedKeys(deliveryIDs) {
		dd := DeliveryResultDoc{ID: id}
		if scores != nil {
			sc := scores.Deliveries[id]
			dd.Score = &sc
		}
		if tr != nil {
			f := tr.Deliveries[id]
			dd.Forward, dd.Backward = f.Forward, f.Backward
		}
		rep.Deliveries = append(rep.Deliveries, dd)
	}

	return rep
}

// NewDatesReport renders processed date ranges in delivery ID order.
func NewDatesReport(ranges map[string]dates.Processed) *DatesReport {
	rep := &DatesReport{}
	ids := make([]string, 0, len(ranges))
	for id := range ranges {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		p := ranges[id]
		rep.Deliveries = append(rep.Deliveries, DeliveryDatesDoc{
			ID:             id,
			ExpOut:         p.ExpOut.String(),
			ExpIn:          p.ExpIn.String(),
			CompOut:        p.CompOut.String(),
			CompIn:         p.CompIn.String(),
			ImplausibleOut: p.ImplausibleOut,
			ImplausibleIn:  p.ImplausibleIn,
		})
	}

	return rep
}

func addKeys[V any](dst map[string]struct{}, src map[string]V) {
	for k := range src {
		dst[k] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
