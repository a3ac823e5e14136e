// Package histogram provides multi-dimensional histograms with
// marginalization (projection) onto a subset of axes.
//
// A histogram pairs an ordered set of axes with a storage of accumulated
// cell values. Each axis maps a continuous or categorical input to an
// integer bin index and may carry underflow/overflow slots for inputs
// outside its regular range. The axis order defines the dimension order
// used by every index vector in the package.
//
// The central operation is Project, which sums a histogram over all axes
// not listed in a selector, producing a lower-dimensional histogram whose
// axes appear in selector order:
//
//	h, _ := histogram.New[int64](ax, ay, az)
//	// ... fill ...
//	hxz, err := histogram.Project(h, []int{0, 2})
//
// Projection enumerates every cell of the source, boundary slots included,
// so the grand total is conserved. MustProject is the variant for selectors
// known at the call site; it panics on malformed selectors instead of
// returning an error.
package histogram
