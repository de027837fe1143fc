// SPDX-License-Identifier: MIT
// Package: fcltrace/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewStations indicates a size parameter below the constructor minimum.
var ErrTooFewStations = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the snapshot rejected an element, or a nil
// constructor was passed to BuildSnapshot.
var ErrConstructFailed = errors.New("builder: construction failed")
