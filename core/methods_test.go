// SPDX-License-Identifier: MIT
// Package core_test verifies Snapshot construction and query contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcltrace/core"
)

// buildChain creates S1 -D1-> S2 -D2-> S3 with connection D1→D2 at S2.
func buildChain(t *testing.T) *core.Snapshot {
	t.Helper()
	s := core.NewSnapshot()
	for _, id := range []string{"S1", "S2", "S3"} {
		_, err := s.AddStation(id)
		require.NoError(t, err)
	}
	_, err := s.AddDelivery("D1", "S1", "S2")
	require.NoError(t, err)
	_, err = s.AddDelivery("D2", "S2", "S3")
	require.NoError(t, err)
	require.NoError(t, s.AddConnection("S2", "D1", "D2"))

	return s
}

func TestSnapshot_AddStation(t *testing.T) {
	s := core.NewSnapshot()

	_, err := s.AddStation("")
	assert.ErrorIs(t, err, core.ErrEmptyID)

	st, err := s.AddStation("A", core.WithOutbreak(), core.WithKillContamination(), core.WithObserved(core.ObservedFull))
	require.NoError(t, err)
	assert.True(t, st.Outbreak)
	assert.True(t, st.KillContamination)
	assert.Equal(t, core.ObservedFull, st.Observed)
	assert.Same(t, st, s.Station("A"))
	assert.True(t, s.HasStation("A"))
	assert.Nil(t, s.Station("missing"))

	_, err = s.AddStation("A")
	assert.ErrorIs(t, err, core.ErrDuplicateID)
	assert.Equal(t, 1, s.StationCount())
}

func TestSnapshot_AddDelivery_UpdatesAdjacency(t *testing.T) {
	s := buildChain(t)

	assert.Equal(t, []string{"D1"}, s.Station("S1").Outgoing)
	assert.Empty(t, s.Station("S1").Incoming)
	assert.Equal(t, []string{"D1"}, s.Station("S2").Incoming)
	assert.Equal(t, []string{"D2"}, s.Station("S2").Outgoing)
	assert.Equal(t, []string{"D2"}, s.Station("S3").Incoming)

	d := s.Delivery("D1")
	require.NotNil(t, d)
	assert.Equal(t, "S1", d.Source)
	assert.Equal(t, "S2", d.Target)

	_, err := s.AddDelivery("D1", "S1", "S2")
	assert.ErrorIs(t, err, core.ErrDuplicateID)
	_, err = s.AddDelivery("D9", "S1", "nowhere")
	assert.ErrorIs(t, err, core.ErrStationNotFound)
	_, err = s.AddDelivery("", "S1", "S2")
	assert.ErrorIs(t, err, core.ErrEmptyID)
}

func TestSnapshot_AddConnection(t *testing.T) {
	s := buildChain(t)

	// Duplicate pair is a no-op.
	require.NoError(t, s.AddConnection("S2", "D1", "D2"))
	assert.Len(t, s.Station("S2").Connections, 1)
	assert.Equal(t, []string{"D1"}, s.Station("S2").ConnectedFrom("D2"))
	assert.Equal(t, []string{"D2"}, s.Station("S2").ConnectedTo("D1"))
	assert.Empty(t, s.Station("S2").ConnectedTo("D2"))

	assert.ErrorIs(t, s.AddConnection("S9", "D1", "D2"), core.ErrStationNotFound)
	assert.ErrorIs(t, s.AddConnection("S2", "D9", "D2"), core.ErrDeliveryNotFound)
	assert.ErrorIs(t, s.AddConnection("S2", "D1", "D9"), core.ErrDeliveryNotFound)
	// D2 does not arrive at S2.
	assert.ErrorIs(t, s.AddConnection("S2", "D2", "D1"), core.ErrConnectionMismatch)
}

func TestSnapshot_Version(t *testing.T) {
	s := buildChain(t)
	v0 := s.Version()
	assert.NotEmpty(t, v0)

	// Flag edits keep the token.
	s.Station("S1").Outbreak = true
	assert.Equal(t, v0, s.Version())

	require.NoError(t, s.SetDeliveryDates("D1", "2024-01-02", "2024-01-01"))
	v1 := s.Version()
	assert.NotEqual(t, v0, v1)
	assert.Equal(t, "2024-01-02", s.Delivery("D1").DateIn)

	s.Touch()
	assert.NotEqual(t, v1, s.Version())

	assert.ErrorIs(t, s.SetDeliveryDates("nope", "", ""), core.ErrDeliveryNotFound)
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	s := buildChain(t)
	s.Station("S2").Score = 0.5

	c := s.Clone()
	assert.Equal(t, s.Version(), c.Version())
	assert.Equal(t, s.StationIDs(), c.StationIDs())
	assert.Equal(t, 0.5, c.Station("S2").Score)

	c.Station("S2").Incoming[0] = "changed"
	c.Station("S2").Connections[0].From = "changed"
	c.Delivery("D1").DateIn = "2020-01-01"
	assert.Equal(t, "D1", s.Station("S2").Incoming[0])
	assert.Equal(t, "D1", s.Station("S2").Connections[0].From)
	assert.Empty(t, s.Delivery("D1").DateIn)

	_, err := c.AddStation("S4")
	require.NoError(t, err)
	assert.NotEqual(t, s.Version(), c.Version())
	assert.False(t, s.HasStation("S4"))
}

func TestSnapshot_ResetOutputs(t *testing.T) {
	s := buildChain(t)
	st := s.Station("S1")
	st.Score, st.CommonLink, st.Forward, st.Backward = 1, true, true, true
	d := s.Delivery("D2")
	d.Score, d.Forward, d.Backward = 1, true, true

	s.ResetOutputs()
	assert.Zero(t, st.Score)
	assert.False(t, st.CommonLink || st.Forward || st.Backward)
	assert.Zero(t, d.Score)
	assert.False(t, d.Forward || d.Backward)
}

func TestSnapshot_SortedEnumeration(t *testing.T) {
	s := core.NewSnapshot()
	for _, id := range []string{"C", "A", "B"} {
		_, err := s.AddStation(id)
		require.NoError(t, err)
	}
	_, _ = s.AddDelivery("d2", "A", "B")
	_, _ = s.AddDelivery("d1", "B", "C")

	assert.Equal(t, []string{"A", "B", "C"}, s.StationIDs())
	ds := s.Deliveries()
	require.Len(t, ds, 2)
	assert.Equal(t, "d1", ds[0].ID)
	assert.Equal(t, "d2", ds[1].ID)
	assert.Equal(t, 2, s.DeliveryCount())
}

func TestSnapshot_Stats(t *testing.T) {
	s := core.NewSnapshot()
	_, _ = s.AddStation("A", core.WithOutbreak(), core.WithCrossContamination())
	_, _ = s.AddStation("B", core.WithKillContamination(), core.WithInvisible())
	_, _ = s.AddStation("C", core.WithObserved(core.ObservedForward), core.WithContained())
	_, _ = s.AddDelivery("d1", "A", "B", core.WithDates("2024-01-02", ""), core.WithDeliveryObserved(core.ObservedBackward))
	_, _ = s.AddDelivery("d2", "B", "C", core.WithDeliveryKillContamination(), core.WithDeliveryCrossContamination())
	require.NoError(t, s.AddConnection("B", "d1", "d2"))

	st := s.Stats()
	assert.Equal(t, 3, st.StationCount)
	assert.Equal(t, 2, st.DeliveryCount)
	assert.Equal(t, 1, st.ConnectionCount)
	assert.Equal(t, 1, st.OutbreakCount)
	assert.Equal(t, 2, st.ObservedCount)
	assert.Equal(t, 2, st.KillCount)
	assert.Equal(t, 2, st.CrossCount)
	assert.Equal(t, 2, st.HiddenStationCount)
	assert.Equal(t, 1, st.DatedDeliveryCount)
}

func TestObservedType(t *testing.T) {
	cases := []struct {
		in       string
		want     core.ObservedType
		fwd, bwd bool
	}{
		{"", core.ObservedNone, false, false},
		{"none", core.ObservedNone, false, false},
		{"Forward", core.ObservedForward, true, false},
		{"BACKWARD", core.ObservedBackward, false, true},
		{" full ", core.ObservedFull, true, true},
	}
	for _, tc := range cases {
		got, err := core.ParseObservedType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.fwd, got.Forward(), tc.in)
		assert.Equal(t, tc.bwd, got.Backward(), tc.in)
	}

	_, err := core.ParseObservedType("sideways")
	assert.ErrorIs(t, err, core.ErrUnknownObservedType)
	assert.Equal(t, "FULL", core.ObservedFull.String())
	assert.Equal(t, "ObservedType(7)", core.ObservedType(7).String())
}
