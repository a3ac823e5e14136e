// Package nshape provides overflow-checked shape arithmetic for
// N-dimensional cell spaces: extent products, row-major strides, and flat
// offsets.
package nshape

import (
	"fmt"
	"math"
)

// CheckMulOverflow checks if multiplying two non-negative ints would overflow.
// Returns an error if overflow would occur.
func CheckMulOverflow(a, b int) error {
	if a == 0 || b == 0 {
		return nil // No overflow when either is zero
	}

	if a > math.MaxInt/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds int max", a, b)
	}

	return nil
}

// Product returns the product of all extents with overflow checking.
// The empty product is 1, matching the single cell of a zero-rank space.
func Product(extents []int) (int, error) {
	total := 1
	for i, e := range extents {
		if e < 1 {
			return 0, fmt.Errorf("extent must be >= 1 at dimension %d, got %d", i, e)
		}

		if err := CheckMulOverflow(total, e); err != nil {
			return 0, fmt.Errorf("cell count overflow at dimension %d: %w", i, err)
		}

		total *= e
	}

	return total, nil
}

// Strides returns the row-major strides for the given extents. The last
// dimension varies fastest. Strides are in cells, not bytes.
func Strides(extents []int) []int {
	strides := make([]int, len(extents))
	stride := 1
	for i := len(extents) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= extents[i]
	}
	return strides
}

// FlatOffset maps an index vector to a flat cell offset using the given
// strides. The caller guarantees len(indices) == len(strides) and that each
// index is within its extent.
func FlatOffset(indices, strides []int) int {
	offset := 0
	for i, idx := range indices {
		offset += idx * strides[i]
	}
	return offset
}
