// Package dates derives plausible dispatch and arrival date ranges for every
// delivery of a core.Snapshot.
//
// Each delivery gets four ranges: the explicit ones read from its own
// DateOut/DateIn (ExpOut, ExpIn) and the computed ones (CompOut, CompIn),
// narrowed along station connections in both directions. Explicit dates that
// contradict each other, either within one delivery or across a connection,
// are flagged implausible and stop contributing to the computation.
//
// Dates are plain YYYY-MM-DD strings. Anything else, including the empty
// string, means "unknown" and yields an unbounded range; Process never fails.
//
// The engine in package tracing caches Process output per snapshot version
// and uses it to gate cross-contamination.
package dates
