package histogram

import (
	"errors"
	"fmt"
)

// Errors reported by Project for malformed selectors. Both are detected
// before any part of the result is allocated, so a failed call leaves no
// partial result behind.
var (
	// ErrDuplicateAxis reports a selector listing the same axis position
	// twice.
	ErrDuplicateAxis = errors.New("histogram: duplicate axis position in selector")

	// ErrAxisOutOfRange reports a selector position outside the source's
	// axis range.
	ErrAxisOutOfRange = errors.New("histogram: axis position out of range")
)

// Project returns a lower-dimensional histogram, summing h over every axis
// not listed in positions. The result's axes are the source axes at the
// listed positions, in listed order, so Project(h, []int{2, 0}) yields a
// 2-D histogram whose first axis is h's third. Every source cell
// contributes, boundary slots included, so the grand total is conserved.
//
// positions may be empty: the result is then a zero-rank histogram whose
// single cell holds the grand total of h.
//
// Each position must satisfy 0 <= position < h.Rank() and positions must be
// pairwise distinct; otherwise Project returns ErrAxisOutOfRange or
// ErrDuplicateAxis. The source is never mutated.
func Project[V any](h *Histogram[V], positions []int) (*Histogram[V], error) {
	rank := h.Rank()
	for _, p := range positions {
		if p < 0 || p >= rank {
			return nil, fmt.Errorf("%w: %d with source rank %d", ErrAxisOutOfRange, p, rank)
		}
	}

	seen := make([]bool, rank)
	axes := make(AxisSet, 0, len(positions))
	for _, p := range positions {
		if seen[p] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateAxis, p)
		}
		seen[p] = true
		axes = append(axes, h.axes[p])
	}

	out, err := newLike(h, axes)
	if err != nil {
		return nil, err
	}

	// One coordinate buffer, reused for every source cell.
	idx := make([]int, len(positions))
	for it := Cells(h, CoverAll); it.Next(); {
		for j, p := range positions {
			idx[j] = it.Index(p)
		}
		out.storage.Accumulate(out.flatIndex(idx), it.Value())
	}

	return out, nil
}

// MustProject is Project for selectors known at the call site. It takes at
// least one position and panics on a duplicate or out-of-range position,
// which in that setting is a programmer error rather than a runtime
// condition.
func MustProject[V any](h *Histogram[V], first int, rest ...int) *Histogram[V] {
	positions := make([]int, 0, 1+len(rest))
	positions = append(positions, first)
	positions = append(positions, rest...)

	out, err := Project(h, positions)
	if err != nil {
		panic(err)
	}
	return out
}
