// Package builder provides deterministic, functional-options style factories
// for supply-chain snapshots. They feed benchmarks, examples, tests and the
// `fcltrace generate` command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, station ID scheme and delivery calendar.
//   - Station ID schemes (IDFn implementations):
//     – DefaultIDFn:       "S0","S1",…
//     – ExcelColumnIDFn:   "A","Z","AA",…
//     – SymbolNumberIDFn:  prefix + decimal index.
//   - Topologies (Constructor factories):
//     – Chain:          a linear supply chain with connections at each hop.
//     – FanOut:         one supplier delivering to many customers.
//     – RandomNetwork:  a random forward-only network with random routing.
//   - Decorators:
//     – MarkOutbreaks, RandomOutbreaks, MarkObserved,
//       MarkCrossContamination, MarkKillContamination.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     snapshots (IDs, deliveries, connections and dates).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
//
// Dates:
//
//	Without WithStartDate deliveries are undated. With it, a delivery leaving
//	station i is dispatched on start + i*(transit+dwell) and arrives transit
//	days later, so every generated network is date-plausible.
package builder
