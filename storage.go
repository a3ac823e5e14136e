package histogram

// Storage maps flat cell offsets to accumulated values of type V. A storage
// knows how to build an empty instance of its own kind with a new shape, so
// operations like projection can construct a result matching the source's
// value type without knowing the concrete storage.
//
// Accumulate must be commutative and associative (up to floating-point
// rounding): the order in which cells are folded into a slot is unspecified.
type Storage[V any] interface {
	// Len returns the number of cells.
	Len() int

	// At returns the accumulated value of cell i.
	At(i int) V

	// Accumulate adds v into cell i.
	Accumulate(i int, v V)

	// NewSame returns a new, zero-valued storage of the same kind with n
	// cells.
	NewSame(n int) Storage[V]
}

// Number constrains the cell value types Dense can accumulate with +=.
type Number interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Dense is a slice-backed storage for built-in numeric cell values.
type Dense[V Number] []V

// Len returns the number of cells.
func (d Dense[V]) Len() int { return len(d) }

// At returns the value of cell i.
func (d Dense[V]) At(i int) V { return d[i] }

// Accumulate adds v into cell i.
func (d Dense[V]) Accumulate(i int, v V) { d[i] += v }

// NewSame returns a zero-valued Dense with n cells.
func (d Dense[V]) NewSame(n int) Storage[V] { return make(Dense[V], n) }

// Weight is a cell value tracking a sum of weights and the sum of their
// squares, so a weighted histogram keeps enough information for a variance
// estimate per cell. Accumulation is componentwise, which makes projection
// preserve both sums exactly.
type Weight struct {
	Sum   float64
	SumW2 float64
}

// W returns the Weight contributed by a single fill with weight w.
func W(w float64) Weight { return Weight{Sum: w, SumW2: w * w} }

// Add returns the componentwise sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{Sum: w.Sum + other.Sum, SumW2: w.SumW2 + other.SumW2}
}

// WeightedDense is a slice-backed storage for Weight cell values.
type WeightedDense []Weight

// Len returns the number of cells.
func (d WeightedDense) Len() int { return len(d) }

// At returns the value of cell i.
func (d WeightedDense) At(i int) Weight { return d[i] }

// Accumulate adds v into cell i componentwise.
func (d WeightedDense) Accumulate(i int, v Weight) {
	d[i].Sum += v.Sum
	d[i].SumW2 += v.SumW2
}

// NewSame returns a zero-valued WeightedDense with n cells.
func (d WeightedDense) NewSame(n int) Storage[Weight] { return make(WeightedDense, n) }
