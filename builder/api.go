// SPDX-License-Identifier: MIT
// Package: fcltrace/builder
//
// api.go - thin public entry-point for the builder package.
//
// One orchestrator: BuildSnapshot(bopts, cons...). It creates the snapshot,
// resolves cfg and runs cons in order. Factories live in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fcltrace/core"
)

// Constructor applies a deterministic snapshot mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and never panic.
type Constructor func(s *core.Snapshot, cfg builderConfig) error

// BuildSnapshot creates a new core.Snapshot, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildSnapshot: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildSnapshot(bopts []BuilderOption, cons ...Constructor) (*core.Snapshot, error) {
	s := core.NewSnapshot()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSnapshot: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildSnapshot: %w", err)
		}
	}

	return s, nil
}

// Chain builds S0 → S1 → … → S(n-1) with one connection per interior hop (n ≥ 2).
// Complexity: O(n).
//func Chain(n int) Constructor

// FanOut builds one supplier S0 delivering to n customers S1..Sn (n ≥ 1).
// Complexity: O(n).
//func FanOut(n int) Constructor

// RandomNetwork builds n stations with forward-only deliveries i→j (i<j),
// each present with probability p, and routes each (in, out) pair at a
// station with the same probability. Requires an RNG when 0 < p < 1.
// Complexity: O(n² + Σ in·out).
//func RandomNetwork(n int, p float64) Constructor
