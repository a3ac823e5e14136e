package histogram

// Coverage selects which cells an iteration visits.
type Coverage int

// Coverage modes. CoverAll is the mode projection uses, so no accumulated
// value is lost when an axis is summed out.
const (
	// CoverInner visits only the regular bins of every axis.
	CoverInner Coverage = iota

	// CoverAll visits every cell, underflow/overflow slots included.
	CoverAll
)

// CellIter enumerates every cell of a histogram exactly once, yielding each
// cell's per-axis stored indices and its accumulated value. The iterator
// follows the Go scanner pattern (bufio.Scanner):
//
//	for it := histogram.Cells(h, histogram.CoverAll); it.Next(); {
//	    fmt.Println(it.Indices(), it.Value())
//	}
//
// The enumeration is lazy and row-major over the stored index space; the
// order is an implementation detail callers must not rely on. Reset rewinds
// the iterator for another full pass.
type CellIter[V any] struct {
	h       *Histogram[V]
	lo, hi  []int // per-axis stored index bounds, [lo, hi)
	idx     []int // current stored indices, reused across cells
	started bool
	done    bool
}

// Cells returns an iterator over the cells of h covered by cov. The source
// histogram must not be mutated while the iterator is in use.
func Cells[V any](h *Histogram[V], cov Coverage) *CellIter[V] {
	rank := h.Rank()
	it := &CellIter[V]{
		h:   h,
		lo:  make([]int, rank),
		hi:  make([]int, rank),
		idx: make([]int, rank),
	}
	for k, a := range h.axes {
		if cov == CoverAll {
			it.lo[k] = 0
			it.hi[k] = a.Extent()
		} else {
			it.lo[k] = flowOffset(a)
			it.hi[k] = flowOffset(a) + a.Size()
		}
	}
	return it
}

// Next advances to the next cell. It returns false after the last cell has
// been visited. A zero-rank histogram has exactly one cell.
func (it *CellIter[V]) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		copy(it.idx, it.lo)
		return true
	}
	// Odometer advance, last axis fastest.
	for k := len(it.idx) - 1; k >= 0; k-- {
		it.idx[k]++
		if it.idx[k] < it.hi[k] {
			return true
		}
		it.idx[k] = it.lo[k]
	}
	it.done = true
	return false
}

// Index returns the current cell's stored index along axis k.
func (it *CellIter[V]) Index(k int) int { return it.idx[k] }

// Bin returns the current cell's signed bin index along axis k: -1 for the
// underflow slot, Size() for the overflow slot.
func (it *CellIter[V]) Bin(k int) int { return it.idx[k] - flowOffset(it.h.axes[k]) }

// Indices returns the current cell's stored index vector. The slice is
// reused by the iterator; callers must not modify it and must copy it to
// retain it across Next calls.
func (it *CellIter[V]) Indices() []int { return it.idx }

// Value returns the current cell's accumulated value.
func (it *CellIter[V]) Value() V {
	return it.h.storage.At(it.h.flatIndex(it.idx))
}

// Reset rewinds the iterator so the next Next call starts a fresh pass.
func (it *CellIter[V]) Reset() {
	it.started = false
	it.done = false
}
