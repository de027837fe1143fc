package dates_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/dates"
)

// day parses a fixture date or fails the test.
func day(t *testing.T, s string) float64 {
	t.Helper()
	d, ok := dates.Parse(s)
	require.True(t, ok, s)

	return d
}

// chain builds S0 -A-> S1 -B-> S2 -C-> S3 with connections A→B and B→C.
// dateFn supplies (in, out) per delivery ID.
func chain(t *testing.T, dateFn map[string][2]string) *core.Snapshot {
	t.Helper()
	s := core.NewSnapshot()
	for _, id := range []string{"S0", "S1", "S2", "S3"} {
		_, err := s.AddStation(id)
		require.NoError(t, err)
	}
	for i, id := range []string{"A", "B", "C"} {
		dd := dateFn[id]
		_, err := s.AddDelivery(id, "S"+string(rune('0'+i)), "S"+string(rune('1'+i)), core.WithDates(dd[0], dd[1]))
		require.NoError(t, err)
	}
	require.NoError(t, s.AddConnection("S1", "A", "B"))
	require.NoError(t, s.AddConnection("S2", "B", "C"))

	return s
}

func TestParse_Strict(t *testing.T) {
	d, ok := dates.Parse("1970-01-02")
	assert.True(t, ok)
	assert.Equal(t, 1.0, d)

	for _, bad := range []string{"", "2024-1-02", "02.01.2024", "2024-01-02T00:00:00Z", " 2024-01-02", "2024-02-30"} {
		_, ok = dates.Parse(bad)
		assert.False(t, ok, bad)
		assert.True(t, dates.Explicit(bad).IsUnbounded(), bad)
	}

	assert.Equal(t, "2024-03-01", dates.Format(day(t, "2024-03-01")))
	assert.Equal(t, "[-inf, +inf]", dates.Unbounded().String())
	assert.Equal(t, dates.Point(day(t, "2024-03-01")), dates.Explicit("2024-03-01"))
}

func TestRange_Predicates(t *testing.T) {
	r := dates.Range{Lower: 3, Upper: 5}
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(6))
	assert.False(t, r.IsEmpty())
	assert.True(t, dates.Range{Lower: 6, Upper: 5}.IsEmpty())
	assert.True(t, r.Disjoint(dates.Point(7)))
	assert.False(t, r.Disjoint(dates.Range{Lower: 5, Upper: 9}))
	assert.False(t, r.IsUnbounded())
}

func TestProcess_NilSnapshot(t *testing.T) {
	assert.Empty(t, dates.Process(nil))
}

func TestProcess_UnknownDatesStayUnbounded(t *testing.T) {
	s := chain(t, nil)
	res := dates.Process(s)
	require.Len(t, res, 3)
	for id, r := range res {
		assert.True(t, r.ExpIn.IsUnbounded(), id)
		assert.True(t, r.ExpOut.IsUnbounded(), id)
		assert.True(t, r.CompIn.IsUnbounded(), id)
		assert.True(t, r.CompOut.IsUnbounded(), id)
		assert.False(t, r.ImplausibleIn || r.ImplausibleOut, id)
	}
}

func TestProcess_ChainNarrowsMiddleDelivery(t *testing.T) {
	s := chain(t, map[string][2]string{
		"A": {"", "2024-01-01"},
		"C": {"2024-01-10", ""},
	})
	res := dates.Process(s)

	lo, hi := day(t, "2024-01-01"), day(t, "2024-01-10")
	b := res["B"]
	assert.Equal(t, dates.Range{Lower: lo, Upper: hi}, b.CompIn)
	assert.Equal(t, dates.Range{Lower: lo, Upper: hi}, b.CompOut)
	assert.True(t, b.ExpIn.IsUnbounded())

	// Explicit ends are kept; derived ends fill in.
	assert.Equal(t, dates.Point(lo), res["A"].CompOut)
	assert.Equal(t, dates.Range{Lower: lo, Upper: hi}, res["A"].CompIn)
	assert.Equal(t, dates.Point(hi), res["C"].CompIn)
	assert.Equal(t, dates.Range{Lower: lo, Upper: hi}, res["C"].CompOut)

	for id, r := range res {
		assert.False(t, r.ImplausibleIn || r.ImplausibleOut, id)
		// Computed ranges never widen the explicit ones.
		assert.GreaterOrEqual(t, r.CompIn.Lower, r.ExpIn.Lower, id)
		assert.LessOrEqual(t, r.CompIn.Upper, r.ExpIn.Upper, id)
		assert.GreaterOrEqual(t, r.CompOut.Lower, r.ExpOut.Lower, id)
		assert.LessOrEqual(t, r.CompOut.Upper, r.ExpOut.Upper, id)
	}
}

func TestProcess_IntraDeliveryImplausible(t *testing.T) {
	// Dispatched after arrival.
	s := chain(t, map[string][2]string{
		"B": {"2024-01-01", "2024-01-05"},
	})
	res := dates.Process(s)

	b := res["B"]
	assert.True(t, b.ImplausibleIn)
	assert.True(t, b.ImplausibleOut)
	assert.Equal(t, dates.Point(day(t, "2024-01-01")), b.ExpIn)
	assert.True(t, b.CompIn.IsUnbounded())
	assert.True(t, b.CompOut.IsUnbounded())
}

func TestProcess_InterDeliveryImplausibleTriggersRevision(t *testing.T) {
	// A arrives at S1 on the 10th but B leaves S1 on the 5th.
	s := chain(t, map[string][2]string{
		"A": {"2024-01-10", "2024-01-09"},
		"B": {"", "2024-01-05"},
		"C": {"2024-01-20", ""},
	})
	res := dates.Process(s)

	// Both sides of the contradiction are flagged; C is consistent.
	assert.True(t, res["A"].ImplausibleIn)
	assert.True(t, res["A"].ImplausibleOut)
	assert.True(t, res["B"].ImplausibleOut)
	assert.False(t, res["B"].ImplausibleIn)
	assert.False(t, res["C"].ImplausibleIn)

	// The revision pass derives ranges without the flagged dates.
	for id, r := range res {
		assert.False(t, r.CompIn.IsEmpty(), id)
		assert.False(t, r.CompOut.IsEmpty(), id)
	}
	jan20 := day(t, "2024-01-20")
	assert.Equal(t, jan20, res["B"].CompIn.Upper)
	assert.Equal(t, jan20, res["B"].CompOut.Upper)
	assert.Equal(t, jan20, res["A"].CompOut.Upper)
	assert.True(t, math.IsInf(res["B"].CompOut.Lower, -1))
}

func TestProcess_CycleTerminates(t *testing.T) {
	// xy reaches Y, is routed into yx, which is routed back into xy at X.
	s := core.NewSnapshot()
	_, _ = s.AddStation("X")
	_, _ = s.AddStation("Y")
	_, _ = s.AddDelivery("xy", "X", "Y", core.WithDates("2024-05-02", "2024-05-01"))
	_, _ = s.AddDelivery("yx", "Y", "X")
	require.NoError(t, s.AddConnection("Y", "xy", "yx"))
	require.NoError(t, s.AddConnection("X", "yx", "xy"))

	res := dates.Process(s)
	require.Len(t, res, 2)
	// The loop forces xy to leave after it arrives.
	assert.True(t, res["xy"].ImplausibleOut)
	assert.False(t, res["yx"].ImplausibleIn || res["yx"].ImplausibleOut)
}

func TestProcess_Deterministic(t *testing.T) {
	s := chain(t, map[string][2]string{
		"A": {"2024-01-03", "2024-01-01"},
		"C": {"2024-01-10", "2024-01-08"},
	})
	assert.Equal(t, dates.Process(s), dates.Process(s))
}
