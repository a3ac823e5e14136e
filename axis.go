package histogram

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Axis describes one dimension's binning scheme. It maps an input value to a
// signed bin index and reports how many storage slots the dimension needs,
// including any underflow/overflow slots.
//
// Index returns -1 for inputs below the regular range (underflow) and Size()
// for inputs at or above it (overflow), regardless of whether the axis
// actually stores those slots. Storage addressing uses the normalized index
// instead: signed index plus 1 when the axis has an underflow slot, so all
// stored indices lie in [0, Extent()).
type Axis interface {
	// Size returns the number of regular bins.
	Size() int

	// Extent returns the total number of storage slots, including any
	// underflow/overflow slots. Extent() >= Size().
	Extent() int

	// Underflow reports whether the axis stores an underflow slot.
	Underflow() bool

	// Overflow reports whether the axis stores an overflow slot.
	Overflow() bool

	// Index returns the signed bin index for x: -1 below the regular range,
	// 0..Size()-1 inside it, Size() at or above it.
	Index(x float64) int

	// Equal reports whether other describes the same binning scheme.
	Equal(other Axis) bool
}

// flowOffset returns the shift from signed to stored bin indices: 1 when the
// axis has an underflow slot, 0 otherwise.
func flowOffset(a Axis) int {
	if a.Underflow() {
		return 1
	}
	return 0
}

// Regular is an axis with uniform-width bins over the half-open interval
// [Lo, Hi), with underflow and overflow slots.
type Regular struct {
	bins   int
	lo, hi float64
}

// NewRegular returns a Regular axis with bins uniform bins over [lo, hi).
func NewRegular(bins int, lo, hi float64) (*Regular, error) {
	if bins < 1 {
		return nil, fmt.Errorf("regular axis needs at least 1 bin, got %d", bins)
	}
	if !(lo < hi) {
		return nil, fmt.Errorf("regular axis needs lo < hi, got [%g, %g)", lo, hi)
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, fmt.Errorf("regular axis bounds must be finite, got [%g, %g)", lo, hi)
	}
	return &Regular{bins: bins, lo: lo, hi: hi}, nil
}

// Size returns the number of regular bins.
func (a *Regular) Size() int { return a.bins }

// Extent returns Size() plus the underflow and overflow slots.
func (a *Regular) Extent() int { return a.bins + 2 }

// Underflow reports that the axis stores an underflow slot.
func (a *Regular) Underflow() bool { return true }

// Overflow reports that the axis stores an overflow slot.
func (a *Regular) Overflow() bool { return true }

// Lo returns the inclusive lower edge of the regular range.
func (a *Regular) Lo() float64 { return a.lo }

// Hi returns the exclusive upper edge of the regular range.
func (a *Regular) Hi() float64 { return a.hi }

// Index returns the signed bin index for x. NaN maps to overflow.
func (a *Regular) Index(x float64) int {
	if x < a.lo {
		return -1
	}
	if x >= a.hi || math.IsNaN(x) {
		return a.bins
	}
	i := int(float64(a.bins) * (x - a.lo) / (a.hi - a.lo))
	// Rounding can push a value just below hi into the overflow bin.
	if i >= a.bins {
		i = a.bins - 1
	}
	return i
}

// Equal reports whether other is a Regular axis with identical bins and range.
func (a *Regular) Equal(other Axis) bool {
	b, ok := other.(*Regular)
	return ok && a.bins == b.bins && a.lo == b.lo && a.hi == b.hi
}

// Variable is an axis with bin widths given by an explicit, strictly
// increasing edge list, with underflow and overflow slots. Bin i covers
// [edges[i], edges[i+1]).
type Variable struct {
	edges []float64
}

// NewVariable returns a Variable axis over the given bin edges. At least two
// edges are required and they must be finite and strictly increasing.
func NewVariable(edges ...float64) (*Variable, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("variable axis needs at least 2 edges, got %d", len(edges))
	}
	for i, e := range edges {
		if math.IsInf(e, 0) || math.IsNaN(e) {
			return nil, fmt.Errorf("variable axis edge %d must be finite, got %g", i, e)
		}
		if i > 0 && e <= edges[i-1] {
			return nil, fmt.Errorf("variable axis edges must be strictly increasing, got %g after %g", e, edges[i-1])
		}
	}
	return &Variable{edges: slices.Clone(edges)}, nil
}

// Size returns the number of regular bins, one fewer than the edge count.
func (a *Variable) Size() int { return len(a.edges) - 1 }

// Extent returns Size() plus the underflow and overflow slots.
func (a *Variable) Extent() int { return len(a.edges) + 1 }

// Underflow reports that the axis stores an underflow slot.
func (a *Variable) Underflow() bool { return true }

// Overflow reports that the axis stores an overflow slot.
func (a *Variable) Overflow() bool { return true }

// Edges returns a copy of the bin edges.
func (a *Variable) Edges() []float64 { return slices.Clone(a.edges) }

// Index returns the signed bin index for x. NaN maps to overflow.
func (a *Variable) Index(x float64) int {
	if x < a.edges[0] {
		return -1
	}
	if x >= a.edges[len(a.edges)-1] || math.IsNaN(x) {
		return a.Size()
	}
	// First edge > x; the bin left of it contains x.
	i := sort.SearchFloat64s(a.edges, x)
	if i < len(a.edges) && a.edges[i] == x {
		return i
	}
	return i - 1
}

// Equal reports whether other is a Variable axis with identical edges.
func (a *Variable) Equal(other Axis) bool {
	b, ok := other.(*Variable)
	return ok && slices.Equal(a.edges, b.edges)
}

// Integer is an axis with unit-width bins over the half-open integer range
// [Lo, Hi), with underflow and overflow slots. Inputs are truncated toward
// negative infinity before binning.
type Integer struct {
	lo, hi int
}

// NewInteger returns an Integer axis over [lo, hi).
func NewInteger(lo, hi int) (*Integer, error) {
	if lo >= hi {
		return nil, fmt.Errorf("integer axis needs lo < hi, got [%d, %d)", lo, hi)
	}
	return &Integer{lo: lo, hi: hi}, nil
}

// Size returns the number of regular bins.
func (a *Integer) Size() int { return a.hi - a.lo }

// Extent returns Size() plus the underflow and overflow slots.
func (a *Integer) Extent() int { return a.hi - a.lo + 2 }

// Underflow reports that the axis stores an underflow slot.
func (a *Integer) Underflow() bool { return true }

// Overflow reports that the axis stores an overflow slot.
func (a *Integer) Overflow() bool { return true }

// Index returns the signed bin index for x. NaN maps to overflow.
func (a *Integer) Index(x float64) int {
	if math.IsNaN(x) || x >= float64(a.hi) {
		return a.Size()
	}
	if x < float64(a.lo) {
		return -1
	}
	return int(math.Floor(x)) - a.lo
}

// Equal reports whether other is an Integer axis with an identical range.
func (a *Integer) Equal(other Axis) bool {
	b, ok := other.(*Integer)
	return ok && a.lo == b.lo && a.hi == b.hi
}

// Category is an axis over an explicit list of integer labels. Each label is
// one bin, in list order. Inputs matching no label land in a single overflow
// slot; the axis has no underflow slot.
type Category struct {
	labels []int64
	index  map[int64]int
}

// NewCategory returns a Category axis over the given labels. At least one
// label is required and labels must be distinct.
func NewCategory(labels ...int64) (*Category, error) {
	if len(labels) < 1 {
		return nil, fmt.Errorf("category axis needs at least 1 label, got %d", len(labels))
	}
	index := make(map[int64]int, len(labels))
	for i, l := range labels {
		if _, dup := index[l]; dup {
			return nil, fmt.Errorf("category axis labels must be distinct, got %d twice", l)
		}
		index[l] = i
	}
	return &Category{labels: slices.Clone(labels), index: index}, nil
}

// Size returns the number of labels.
func (a *Category) Size() int { return len(a.labels) }

// Extent returns Size() plus the overflow slot.
func (a *Category) Extent() int { return len(a.labels) + 1 }

// Underflow reports that the axis has no underflow slot.
func (a *Category) Underflow() bool { return false }

// Overflow reports that the axis stores an overflow slot for unmatched labels.
func (a *Category) Overflow() bool { return true }

// Labels returns a copy of the label list.
func (a *Category) Labels() []int64 { return slices.Clone(a.labels) }

// Index returns the bin of the label equal to x, or Size() when x matches no
// label (including non-integral x).
func (a *Category) Index(x float64) int {
	if math.IsNaN(x) || x != math.Trunc(x) {
		return a.Size()
	}
	if i, ok := a.index[int64(x)]; ok {
		return i
	}
	return a.Size()
}

// Equal reports whether other is a Category axis with identical labels in
// identical order.
func (a *Category) Equal(other Axis) bool {
	b, ok := other.(*Category)
	return ok && slices.Equal(a.labels, b.labels)
}
