package histogram

import (
	"fmt"

	"github.com/scigolib/histogram/internal/nshape"
)

// Histogram pairs an ordered AxisSet with a Storage of accumulated cell
// values. The storage holds one cell per combination of stored axis indices,
// laid out row-major over the axis extents.
//
// A zero-rank histogram is valid: it has no axes and exactly one cell.
type Histogram[V any] struct {
	axes    AxisSet
	storage Storage[V]
	strides []int
}

// NewWithStorage returns an empty histogram over the given axes whose cells
// live in a fresh storage of the same kind as proto. Axes must be non-nil.
func NewWithStorage[V any](proto Storage[V], axes ...Axis) (*Histogram[V], error) {
	set := make(AxisSet, 0, len(axes))
	for i, a := range axes {
		if a == nil {
			return nil, fmt.Errorf("axis %d is nil", i)
		}
		set = append(set, a)
	}

	n, err := set.NumCells()
	if err != nil {
		return nil, fmt.Errorf("histogram shape: %w", err)
	}

	return &Histogram[V]{
		axes:    set,
		storage: proto.NewSame(n),
		strides: set.Strides(),
	}, nil
}

// New returns an empty histogram counting values of type V in dense storage.
func New[V Number](axes ...Axis) (*Histogram[V], error) {
	return NewWithStorage[V](Dense[V]{}, axes...)
}

// NewWeighted returns an empty histogram accumulating Weight cells, for
// fills with per-sample weights.
func NewWeighted(axes ...Axis) (*Histogram[Weight], error) {
	return NewWithStorage[Weight](WeightedDense{}, axes...)
}

// newLike returns an empty histogram over axes whose storage has the same
// kind and value type as h's. The axes are assumed validated.
func newLike[V any](h *Histogram[V], axes AxisSet) (*Histogram[V], error) {
	n, err := axes.NumCells()
	if err != nil {
		return nil, fmt.Errorf("histogram shape: %w", err)
	}
	return &Histogram[V]{
		axes:    axes,
		storage: h.storage.NewSame(n),
		strides: axes.Strides(),
	}, nil
}

// Rank returns the number of axes.
func (h *Histogram[V]) Rank() int { return h.axes.Rank() }

// Axes returns a copy of the histogram's axis set. The axes themselves are
// immutable and shared.
func (h *Histogram[V]) Axes() AxisSet { return h.axes.clone() }

// Axis returns the axis at position k.
func (h *Histogram[V]) Axis(k int) Axis { return h.axes[k] }

// NumCells returns the number of addressable cells, boundary slots included.
func (h *Histogram[V]) NumCells() int { return h.storage.Len() }

// flatIndex maps a full vector of stored axis indices to the flat storage
// offset. The caller guarantees the vector's length and ranges.
func (h *Histogram[V]) flatIndex(indices []int) int {
	return nshape.FlatOffset(indices, h.strides)
}

// At returns the accumulated value of the cell at the given stored indices,
// one per axis. For an axis with an underflow slot, stored index 0 is the
// underflow and Size()+1 the overflow. At panics when the index vector's
// length or any index is out of range, like a slice index expression.
func (h *Histogram[V]) At(indices ...int) V {
	if len(indices) != h.Rank() {
		panic(fmt.Sprintf("histogram: index vector has %d entries for rank %d", len(indices), h.Rank()))
	}
	for k, idx := range indices {
		if idx < 0 || idx >= h.axes[k].Extent() {
			panic(fmt.Sprintf("histogram: index %d out of range [0, %d) on axis %d", idx, h.axes[k].Extent(), k))
		}
	}
	return h.storage.At(h.flatIndex(indices))
}

// Accumulate adds v into the cell the axes map the coordinates to, one
// coordinate per axis. A coordinate falling outside an axis's regular range
// lands in that axis's underflow/overflow slot; if the axis does not store
// that slot, the sample is dropped. Returns an error only when the number of
// coordinates does not match the rank.
func (h *Histogram[V]) Accumulate(v V, xs ...float64) error {
	if len(xs) != h.Rank() {
		return fmt.Errorf("fill has %d coordinates for rank %d", len(xs), h.Rank())
	}

	flat := 0
	for k, a := range h.axes {
		signed := a.Index(xs[k])
		if signed < 0 && !a.Underflow() {
			return nil
		}
		if signed >= a.Size() && !a.Overflow() {
			return nil
		}
		flat += (signed + flowOffset(a)) * h.strides[k]
	}

	h.storage.Accumulate(flat, v)
	return nil
}

// Fill adds one count at the cell the axes map the coordinates to.
func Fill[V Number](h *Histogram[V], xs ...float64) error {
	return h.Accumulate(V(1), xs...)
}

// FillWeighted adds a sample with weight w at the cell the axes map the
// coordinates to.
func FillWeighted(h *Histogram[Weight], w float64, xs ...float64) error {
	return h.Accumulate(W(w), xs...)
}

// Sum returns the total over all cells covered by cov: the regular bins for
// CoverInner, every cell including boundary slots for CoverAll.
func (h *Histogram[V]) Sum(cov Coverage) V {
	total := h.storage.NewSame(1)
	for it := Cells(h, cov); it.Next(); {
		total.Accumulate(0, it.Value())
	}
	return total.At(0)
}

// Values returns a copy of all cell values in flat row-major order.
func (h *Histogram[V]) Values() []V {
	values := make([]V, h.storage.Len())
	for i := range values {
		values[i] = h.storage.At(i)
	}
	return values
}

// EqualAxes reports whether other has an equal axis set. Cell values are not
// compared; use Values for that.
func (h *Histogram[V]) EqualAxes(other *Histogram[V]) bool {
	return h.axes.Equal(other.axes)
}
