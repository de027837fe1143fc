// Package dfs defines options for the iterative walker.
package dfs

// Option configures optional behavior of a Walker.
type Option[K comparable] func(*Options[K])

// Options holds configurable parameters for a Walker.
type Options[K comparable] struct {
	// FilterNeighbor, if non-nil, is called for every root and successor
	// before it is visited. Returning false skips the node without marking it.
	FilterNeighbor func(k K) bool

	// OnVisit, if non-nil, is invoked when a node is first visited (pre-order),
	// before its expand call.
	OnVisit func(k K)
}

// DefaultOptions returns Options with no filter and no hook.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		FilterNeighbor: nil,
		OnVisit:        nil,
	}
}

// WithFilterNeighbor returns an Option that installs fn as node filter.
func WithFilterNeighbor[K comparable](fn func(k K) bool) Option[K] {
	return func(o *Options[K]) {
		o.FilterNeighbor = fn
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[K comparable](fn func(k K)) Option[K] {
	return func(o *Options[K]) {
		o.OnVisit = fn
	}
}
