package histogram

import (
	"slices"

	"github.com/scigolib/histogram/internal/nshape"
)

// AxisSet is an ordered sequence of axes. Its order defines the dimension
// order of every index vector in the package. A zero-length set is valid and
// describes a scalar histogram with a single cell.
type AxisSet []Axis

// Rank returns the number of axes.
func (s AxisSet) Rank() int { return len(s) }

// Extents returns each axis's extent, in axis order.
func (s AxisSet) Extents() []int {
	extents := make([]int, len(s))
	for i, a := range s {
		extents[i] = a.Extent()
	}
	return extents
}

// Strides returns the row-major strides over the axis extents: the last axis
// varies fastest.
func (s AxisSet) Strides() []int {
	return nshape.Strides(s.Extents())
}

// NumCells returns the total number of addressable cells, the product of all
// axis extents. The zero-rank set has one cell. Returns an error if the
// product overflows.
func (s AxisSet) NumCells() (int, error) {
	return nshape.Product(s.Extents())
}

// Equal reports whether both sets hold pairwise equal axes in the same order.
func (s AxisSet) Equal(other AxisSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i, a := range s {
		if !a.Equal(other[i]) {
			return false
		}
	}
	return true
}

// Select returns a new set holding the axes at the given positions, in the
// given order. Positions must be valid indices into s; duplicates are
// allowed here and checked by the callers that require distinctness.
func (s AxisSet) Select(positions []int) AxisSet {
	selected := make(AxisSet, 0, len(positions))
	for _, p := range positions {
		selected = append(selected, s[p])
	}
	return selected
}

// clone returns a shallow copy of the set. Axes are immutable after
// construction, so sharing them is safe.
func (s AxisSet) clone() AxisSet {
	return slices.Clone(s)
}
