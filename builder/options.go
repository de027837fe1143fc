// SPDX-License-Identifier: MIT
// Package: fcltrace/builder
//
// options.go: functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; constructors
// themselves never panic.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fcltrace/dates"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the station ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStartDate turns on delivery dates, starting at date (YYYY-MM-DD).
// Panics if date does not parse.
func WithStartDate(date string) BuilderOption {
	day, ok := dates.Parse(date)
	if !ok {
		panic(fmt.Sprintf("builder: WithStartDate(%q): not a %s date", date, dates.Layout))
	}
	return func(c *builderConfig) {
		c.dated = true
		c.startDay = day
	}
}

// WithTransit sets the days between dispatch and arrival. Panics if days < 0.
func WithTransit(days int) BuilderOption {
	if days < 0 {
		panic("builder: WithTransit(days<0)")
	}
	return func(c *builderConfig) {
		c.transit = days
	}
}

// WithDwell sets the days a lot stays at a station before it is shipped on.
// Panics if days < 0.
func WithDwell(days int) BuilderOption {
	if days < 0 {
		panic("builder: WithDwell(days<0)")
	}
	return func(c *builderConfig) {
		c.dwell = days
	}
}
