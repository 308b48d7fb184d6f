package rtrand

// RangeGenerator draws integers from a fixed range. The range is analyzed once at
// construction and the draw strategy for its shape is selected then, so Next performs
// only the per-draw work. It is as thread-safe as its BitSource (usually: not at all).
type RangeGenerator[T Integer] struct {
	src  BitSource
	lo   T
	hi   T
	desc RangeDescriptor
	draw drawFunc
}

// NewRangeGenerator returns a generator for the range between min and max with the bounds
// included or excluded as selected by iv. It returns ErrInvalidRange for empty ranges.
func NewRangeGenerator[T Integer](src BitSource, min, max T, iv Interval) (*RangeGenerator[T], error) {
	lo, hi, err := closedBounds(min, max, iv)
	if err != nil {
		return nil, err
	}
	g := &RangeGenerator[T]{src: src, lo: lo, hi: hi, desc: describe(lo, hi)}
	g.draw = g.desc.strategy()
	log.Tracef("Range generator %v%v, %v%v: size-1 %d, mask %#x, %d bits, %d bit draws, %v",
		lowerBracket(iv), min, max, upperBracket(iv), g.desc.SizeMinusOne, g.desc.BitMask,
		g.desc.BitCount, g.desc.Width, g.desc.Shape)
	return g, nil
}

// NewRangeCCGenerator returns a generator for [min, max].
func NewRangeCCGenerator[T Integer](src BitSource, min, max T) (*RangeGenerator[T], error) {
	return NewRangeGenerator(src, min, max, ClosedClosed)
}

// NewRangeCOGenerator returns a generator for [min, max).
func NewRangeCOGenerator[T Integer](src BitSource, min, max T) (*RangeGenerator[T], error) {
	return NewRangeGenerator(src, min, max, ClosedOpen)
}

// NewRangeOCGenerator returns a generator for (min, max].
func NewRangeOCGenerator[T Integer](src BitSource, min, max T) (*RangeGenerator[T], error) {
	return NewRangeGenerator(src, min, max, OpenClosed)
}

// NewRangeOOGenerator returns a generator for (min, max).
func NewRangeOOGenerator[T Integer](src BitSource, min, max T) (*RangeGenerator[T], error) {
	return NewRangeGenerator(src, min, max, OpenOpen)
}

// Next returns the next uniformly distributed value of the range.
func (g *RangeGenerator[T]) Next() T {
	return offset(g.lo, g.draw(&g.desc, g.src))
}

// Descriptor returns the precomputed range analysis.
func (g *RangeGenerator[T]) Descriptor() RangeDescriptor {
	return g.desc
}

// Min returns the smallest value Next can return.
func (g *RangeGenerator[T]) Min() T {
	return g.lo
}

// Max returns the largest value Next can return.
func (g *RangeGenerator[T]) Max() T {
	return g.hi
}
