// Command fcltrace scores and traces food-supply-chain snapshots stored as
// YAML fixtures.
//
// Usage:
//
//	fcltrace score    FIXTURE   outbreak scores and common links
//	fcltrace trace    FIXTURE   forward/backward marks from observed elements
//	fcltrace dates    FIXTURE   explicit and propagated delivery date ranges
//	fcltrace generate           synthetic fixture from the builder package
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
