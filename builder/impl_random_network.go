// SPDX-License-Identifier: MIT
// Package: fcltrace/builder
//
// impl_random_network.go - implementation of RandomNetwork(n, p).
//
// Model:
//   - Stations idFn(0..n-1).
//   - For i asc, j asc (j > i): delivery idFn(i)>idFn(j) with probability p.
//     Deliveries only run forward in index order, so the network is acyclic
//     and, when dated, every lot leaves after it could have arrived.
//   - For each station asc, each outgoing delivery (creation order) and each
//     incoming delivery (creation order): connect in→out with probability p.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewStations).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) delivery trials + O(Σ in·out) routing trials.
// Determinism: fixed trial order ⇒ identical snapshots for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fcltrace/core"
)

// RandomNetwork returns a Constructor that samples a random supply network.
func RandomNetwork(n int, p float64) Constructor {
	return func(s *core.Snapshot, cfg builderConfig) error {
		// 1. Validate
		if err := validateMin(MethodRandomNetwork, "n", n, MinRandomNetworkStations); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomNetwork, p, cfg); err != nil {
			return err
		}

		// 2. Stations
		if err := addStations(s, cfg, MethodRandomNetwork, n); err != nil {
			return err
		}

		// 3. Deliveries
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !cfg.trial(p) {
					continue
				}
				if _, err := addDelivery(s, cfg, MethodRandomNetwork, i, j); err != nil {
					return err
				}
			}
		}

		// 4. Routing
		for i := 0; i < n; i++ {
			at := cfg.idFn(i)
			st := s.Station(at)
			incoming := append([]string(nil), st.Incoming...)
			outgoing := append([]string(nil), st.Outgoing...)
			for _, out := range outgoing {
				for _, in := range incoming {
					if !cfg.trial(p) {
						continue
					}
					if err := s.AddConnection(at, in, out); err != nil {
						return fmt.Errorf("%s: AddConnection(%s: %s→%s): %w: %w",
							MethodRandomNetwork, at, in, out, ErrConstructFailed, err)
					}
				}
			}
		}

		return nil
	}
}
