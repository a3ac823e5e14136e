package histogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fillSpread fills h with samples landing in regular bins and in flow slots
// on every axis, so projection tests exercise the boundary cells too.
func fillSpread(t *testing.T, h *Histogram[int64]) {
	t.Helper()
	samples := [][]float64{
		{0.5, 0, 7},
		{0.5, 0, 7},
		{1.5, 1, 8},
		{2.5, 1, 7},
		{-9, 0, 8},   // x underflow
		{99, 1, 7},   // x overflow
		{0.5, -4, 8}, // y underflow
		{0.5, 17, 7}, // y overflow
		{1.5, 0, 42}, // z unmatched label -> overflow slot
		{-9, -4, 42}, // several flow slots at once
	}
	for _, xs := range samples {
		require.NoError(t, Fill(h, xs...))
	}
}

func newSpreadHistogram(t *testing.T) *Histogram[int64] {
	t.Helper()
	ax, ay, az := testAxes(t)
	h, err := New[int64](ax, ay, az)
	require.NoError(t, err)
	fillSpread(t, h)
	return h
}

func TestProject_SumConservation(t *testing.T) {
	h := newSpreadHistogram(t)

	selectors := [][]int{
		nil,
		{0},
		{1},
		{2},
		{0, 1},
		{2, 0},
		{1, 2, 0},
	}

	for _, sel := range selectors {
		p, err := Project(h, sel)
		require.NoError(t, err)
		require.Equal(t, h.Sum(CoverAll), p.Sum(CoverAll), "selector %v", sel)
	}
}

func TestProject_IdentitySelector(t *testing.T) {
	h := newSpreadHistogram(t)

	p, err := Project(h, []int{0, 1, 2})
	require.NoError(t, err)

	require.True(t, h.EqualAxes(p))
	require.Equal(t, h.Values(), p.Values())
}

func TestProject_EmptySelector(t *testing.T) {
	h := newSpreadHistogram(t)

	p, err := Project(h, []int{})
	require.NoError(t, err)

	require.Equal(t, 0, p.Rank())
	require.Equal(t, 1, p.NumCells())
	require.Equal(t, h.Sum(CoverAll), p.At(), "single cell holds the grand total")
}

func TestProject_OrderSensitivity(t *testing.T) {
	ax, ay, _ := testAxes(t)
	h, err := New[int64](ax, ay)
	require.NoError(t, err)
	require.NoError(t, Fill(h, 0.5, 0))
	require.NoError(t, Fill(h, 2.5, 1))
	require.NoError(t, Fill(h, 2.5, 1))
	require.NoError(t, Fill(h, -1, 9)) // both flow slots

	fwd, err := Project(h, []int{0, 1})
	require.NoError(t, err)
	rev, err := Project(h, []int{1, 0})
	require.NoError(t, err)

	require.True(t, rev.Axis(0).Equal(h.Axis(1)))
	require.True(t, rev.Axis(1).Equal(h.Axis(0)))

	for a := 0; a < ax.Extent(); a++ {
		for b := 0; b < ay.Extent(); b++ {
			require.Equal(t, fwd.At(a, b), rev.At(b, a), "cell (%d,%d)", a, b)
		}
	}
}

func TestProject_Reprojection(t *testing.T) {
	h := newSpreadHistogram(t)

	// Dropping y first and then x must match dropping both at once.
	xz, err := Project(h, []int{0, 2})
	require.NoError(t, err)
	z1, err := Project(xz, []int{1}) // local position 1 is source axis 2
	require.NoError(t, err)
	z2, err := Project(h, []int{2})
	require.NoError(t, err)

	require.True(t, z1.EqualAxes(z2))
	require.Equal(t, z2.Values(), z1.Values())
}

func TestProject_DuplicateSelector(t *testing.T) {
	h := newSpreadHistogram(t)

	_, err := Project(h, []int{0, 0})
	require.ErrorIs(t, err, ErrDuplicateAxis)

	_, err = Project(h, []int{2, 1, 2})
	require.ErrorIs(t, err, ErrDuplicateAxis)
}

func TestProject_OutOfRangeSelector(t *testing.T) {
	h := newSpreadHistogram(t)

	_, err := Project(h, []int{3})
	require.ErrorIs(t, err, ErrAxisOutOfRange)

	_, err = Project(h, []int{-1})
	require.ErrorIs(t, err, ErrAxisOutOfRange)
}

func TestProject_ConcreteExample(t *testing.T) {
	// 2-axis source: A has 3 regular bins plus flows (5 slots), B has 2
	// regular bins plus flows (4 slots). One count at (A=1, B=1) and one at
	// (A=1, B=0); keeping A alone must leave 2 counts in A's bin 1.
	a, err := NewRegular(3, 0, 3)
	require.NoError(t, err)
	b, err := NewRegular(2, 0, 2)
	require.NoError(t, err)

	h, err := New[int64](a, b)
	require.NoError(t, err)
	require.NoError(t, Fill(h, 1, 1))
	require.NoError(t, Fill(h, 1, 0))

	p, err := Project(h, []int{0})
	require.NoError(t, err)

	require.Equal(t, 1, p.Rank())
	require.Equal(t, []int64{0, 0, 2, 0, 0}, p.Values())
}

func TestProject_WeightedValuesSurvive(t *testing.T) {
	ax, ay, _ := testAxes(t)
	h, err := NewWeighted(ax, ay)
	require.NoError(t, err)

	require.NoError(t, FillWeighted(h, 2, 0.5, 0))
	require.NoError(t, FillWeighted(h, 3, 0.5, 1))
	require.NoError(t, FillWeighted(h, 0.5, 99, 0)) // overflow on x

	p, err := Project(h, []int{0})
	require.NoError(t, err)

	got := p.At(1) // x bin 0, stored index 1
	require.Equal(t, 5.0, got.Sum)
	require.Equal(t, 13.0, got.SumW2, "squared weights accumulate independently")

	over := p.At(4) // x overflow slot
	require.Equal(t, 0.5, over.Sum)
	require.Equal(t, 0.25, over.SumW2)
}

func TestMustProject(t *testing.T) {
	h := newSpreadHistogram(t)

	p := MustProject(h, 2, 0)
	q, err := Project(h, []int{2, 0})
	require.NoError(t, err)
	require.True(t, p.EqualAxes(q))
	require.Equal(t, q.Values(), p.Values())

	require.Panics(t, func() { MustProject(h, 0, 0) })
	require.Panics(t, func() { MustProject(h, 7) })
}

func TestProject_SourceUntouched(t *testing.T) {
	h := newSpreadHistogram(t)
	before := h.Values()

	_, err := Project(h, []int{1})
	require.NoError(t, err)

	require.Equal(t, before, h.Values())
}
