package tracing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcltrace/core"
)

// graph is a tiny fixture DSL over core.Snapshot that fails the test on error.
type graph struct {
	t *testing.T
	s *core.Snapshot
}

func newGraph(t *testing.T) *graph {
	t.Helper()
	return &graph{t: t, s: core.NewSnapshot()}
}

func (g *graph) station(id string, opts ...core.StationOption) *graph {
	g.t.Helper()
	_, err := g.s.AddStation(id, opts...)
	require.NoError(g.t, err)
	return g
}

func (g *graph) delivery(id, from, to string, opts ...core.DeliveryOption) *graph {
	g.t.Helper()
	_, err := g.s.AddDelivery(id, from, to, opts...)
	require.NoError(g.t, err)
	return g
}

func (g *graph) connect(station, in, out string) *graph {
	g.t.Helper()
	require.NoError(g.t, g.s.AddConnection(station, in, out))
	return g
}

// chain returns S1 -D1-> S2 -D2-> S3 with D1→D2 routed at S2.
// opts apply to S1, S2, S3 in order.
func chain(t *testing.T, s1, s2, s3 []core.StationOption) *core.Snapshot {
	t.Helper()
	return newGraph(t).
		station("S1", s1...).
		station("S2", s2...).
		station("S3", s3...).
		delivery("D1", "S1", "S2").
		delivery("D2", "S2", "S3").
		connect("S2", "D1", "D2").
		s
}

func opts(o ...core.StationOption) []core.StationOption { return o }
