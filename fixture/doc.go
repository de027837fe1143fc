// Package fixture reads and writes the YAML documents the fcltrace CLI and
// tests exchange: snapshot fixtures on the way in, score/trace/date reports
// on the way out.
//
// A snapshot document lists stations (with their connections) and
// deliveries; an optional settings block names the cross-contamination trace
// type. Decoding builds a core.Snapshot through its validating constructors,
// so dangling references surface as core sentinel errors.
//
// Example document:
//
//	settings:
//	  cross_cont_trace_type: USE_INFERED_DELIVERY_DATES_LIMITS
//	stations:
//	  - id: farm
//	    observed: FORWARD
//	  - id: mill
//	    cross_contamination: true
//	    connections:
//	      - {from: wheat, to: flour}
//	  - id: bakery
//	    outbreak: true
//	deliveries:
//	  - {id: wheat, source: farm, target: mill, date_out: "2024-01-01"}
//	  - {id: flour, source: mill, target: bakery, date_in: "2024-01-05"}
package fixture
