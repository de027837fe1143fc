// SPDX-License-Identifier: MIT
// Package: fcltrace/builder
//
// impl_chain.go - implementation of Chain(n) and FanOut(n).
//
// Contract:
//   - Chain: n ≥ 2 (else ErrTooFewStations). Deliveries idFn(i-1)>idFn(i) for
//     i=1..n-1, and at every interior station the arriving delivery is
//     connected to the leaving one.
//   - FanOut: n ≥ 1 (else ErrTooFewStations). Supplier idFn(0) delivers to
//     idFn(1..n). The supplier has no incoming deliveries, so no connections.
//
// Complexity: O(n) stations, deliveries and connections.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fcltrace/core"
)

// Chain returns a Constructor that builds a linear supply chain of n stations.
func Chain(n int) Constructor {
	return func(s *core.Snapshot, cfg builderConfig) error {
		// 1. Validate
		if err := validateMin(MethodChain, "n", n, MinChainStations); err != nil {
			return err
		}

		// 2. Stations
		if err := addStations(s, cfg, MethodChain, n); err != nil {
			return err
		}

		// 3. Deliveries, routing each into the next
		prev := ""
		for i := 1; i < n; i++ {
			id, err := addDelivery(s, cfg, MethodChain, i-1, i)
			if err != nil {
				return err
			}
			if prev != "" {
				at := cfg.idFn(i - 1)
				if err = s.AddConnection(at, prev, id); err != nil {
					return fmt.Errorf("%s: AddConnection(%s: %s→%s): %w: %w",
						MethodChain, at, prev, id, ErrConstructFailed, err)
				}
			}
			prev = id
		}

		return nil
	}
}

// FanOut returns a Constructor that builds one supplier and n customers.
func FanOut(n int) Constructor {
	return func(s *core.Snapshot, cfg builderConfig) error {
		if err := validateMin(MethodFanOut, "n", n, MinFanOutCustomers); err != nil {
			return err
		}
		if err := addStations(s, cfg, MethodFanOut, n+1); err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			if _, err := addDelivery(s, cfg, MethodFanOut, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
