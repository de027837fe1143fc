// Package fcltrace is an in-memory engine for food-chain outbreak tracing:
// given stations, the deliveries between them and the connections that route
// lots through each station, it answers "where could this have come from?"
// and "where could it have gone?".
//
// What is in the box:
//
//	core/    : Snapshot, Station, Delivery, Connection; validating constructors
//	dfs/     : iterative depth-first walker with shared visited sets
//	dates/   : explicit and propagated delivery date ranges with plausibility flags
//	tracing/ : outbreak scores, common links, forward/backward trace marks
//	builder/ : deterministic synthetic networks for tests and benchmarks
//	fixture/ : YAML snapshot documents and reports
//	config/  : CLI configuration
//	cmd/fcltrace/: the command-line front end
//
// Quick start:
//
//	s := core.NewSnapshot()
//	s.AddStation("farm")
//	s.AddStation("shop", core.WithOutbreak())
//	s.AddDelivery("lot1", "farm", "shop", core.WithDates("2024-01-02", "2024-01-01"))
//
//	rep, err := tracing.NewEngine().Run(ctx, s, tracing.DefaultSettings())
//	// rep.Scores.CommonLinks() == [farm shop]
//
// Scores are backward reachability from outbreak stations, normalized by the
// number of outbreaks. Trace marks are reachability from observed stations
// and deliveries in the observed direction. Stations with
// KillContamination stop propagation; stations with CrossContamination mix
// every inbound lot into every outbound lot, optionally gated by dates.
package fcltrace
