// Package tracing computes outbreak scores and forward/backward trace flags
// over a core.Snapshot.
//
// What:
//
//   - UpdateScores: for every outbreak station, walk backward and count the
//     stations and deliveries reached; normalize by the outbreak count.
//     Stations reached from every outbreak are common links.
//   - UpdateTrace: from every observed station/delivery, mark what lies
//     downstream (Forward) and/or upstream (Backward).
//   - Run: both passes, merged into the snapshot in place.
//
// Neighbor rule:
//
//	Which lots a lot can reach through a station depends on the station:
//	KillContamination stops everything; CrossContamination fans out to every
//	lot on the other side (date-gated unless DoNotConsiderDeliveryDates);
//	otherwise only the recorded Connections count.
//
// Date gating uses dates.Process output, cached per Snapshot.Version().
//
// Results are returned as maps (ScoreResult, TraceResult) so a pass never
// aliases the snapshot; Apply merges them back.
//
// Telemetry:
//
//	Spans and metrics go through the global OpenTelemetry providers; without
//	a configured provider they are no-ops. Pass summaries are logged at Debug.
package tracing
