// SPDX-License-Identifier: MIT
// Package: fcltrace/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn ("S0","S1",...)
//   • rng      = nil (pure/deterministic unless seeded)
//   • dated    = false (deliveries carry no dates)
//   • transit  = 1 day
//   • dwell    = 1 day

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Station ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Delivery calendar; only used when dated is true.
	dated    bool
	startDay float64
	transit  int
	dwell    int
}

const (
	defaultTransitDays = 1
	defaultDwellDays   = 1
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		transit: defaultTransitDays,
		dwell:   defaultDwellDays,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
