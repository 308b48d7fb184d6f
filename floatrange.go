package rtrand

import (
	"fmt"
	"math"
	"unsafe"
)

// Float is the set of floating-point types the float range functions accept.
type Float interface {
	~float32 | ~float64
}

var (
	float32Units = [...]func(BitSource) float32{
		ClosedClosed: Float32CC,
		ClosedOpen:   Float32CO,
		OpenClosed:   Float32OC,
		OpenOpen:     Float32OO,
	}
	float64Units = [...]func(BitSource) float64{
		ClosedClosed: Float64CC,
		ClosedOpen:   Float64CO,
		OpenClosed:   Float64OC,
		OpenOpen:     Float64OO,
	}
)

func is32[F Float]() bool {
	var zero F
	return unsafe.Sizeof(zero) == 4
}

// unitDraw returns the equidistant unit interval generator of iv for F.
func unitDraw[F Float](iv Interval) func(BitSource) F {
	if is32[F]() {
		u := float32Units[iv]
		return func(src BitSource) F { return F(u(src)) }
	}
	u := float64Units[iv]
	return func(src BitSource) F { return F(u(src)) }
}

func isFinite[F Float](f F) bool {
	return f-f == 0
}

// nextUp returns the smallest F greater than f.
func nextUp[F Float](f F) F {
	if is32[F]() {
		return F(math.Nextafter32(float32(f), float32(math.Inf(1))))
	}
	return F(math.Nextafter(float64(f), math.Inf(1)))
}

// FloatRangeGenerator draws floats from a fixed range by scaling the equidistant unit
// interval generator with the same open/closed bounds. Rounding during scaling can hit an
// open bound; such draws are repeated. A closed upper bound overshot by rounding is
// clamped.
type FloatRangeGenerator[F Float] struct {
	src    BitSource
	lower  F
	upper  F
	iv     Interval
	span   F
	halved bool // span is (upper-lower)/2 because upper-lower overflows
	unit   func(BitSource) F
}

func newFloatRange[F Float](src BitSource, lower, upper F, iv Interval) (FloatRangeGenerator[F], error) {
	if iv > OpenOpen {
		return FloatRangeGenerator[F]{}, fmt.Errorf("%w: %v", ErrInvalidRange, iv)
	}
	if !isFinite(lower) || !isFinite(upper) {
		return FloatRangeGenerator[F]{}, fmt.Errorf("%w: bounds %v, %v must be finite", ErrInvalidRange, lower, upper)
	}
	if upper < lower {
		return FloatRangeGenerator[F]{}, fmt.Errorf("%w: upper %v < lower %v", ErrInvalidRange, upper, lower)
	}
	empty := false
	switch {
	case iv == OpenOpen:
		empty = !(nextUp(lower) < upper)
	case iv.LowerOpen() || iv.UpperOpen():
		empty = lower == upper
	}
	if empty {
		return FloatRangeGenerator[F]{}, fmt.Errorf("%w: %v%v, %v%v contains no %T", ErrInvalidRange,
			lowerBracket(iv), lower, upper, upperBracket(iv), lower)
	}
	g := FloatRangeGenerator[F]{src: src, lower: lower, upper: upper, iv: iv, unit: unitDraw[F](iv)}
	g.span = upper - lower
	if !isFinite(g.span) {
		g.halved = true
		g.span = upper/2 - lower/2
	}
	return g, nil
}

// NewFloatRangeGenerator returns a generator for the range between lower and upper with
// the bounds included or excluded as selected by iv. Both bounds must be finite.
// It returns ErrInvalidRange if the range contains no representable value.
func NewFloatRangeGenerator[F Float](src BitSource, lower, upper F, iv Interval) (*FloatRangeGenerator[F], error) {
	g, err := newFloatRange(src, lower, upper, iv)
	if err != nil {
		return nil, err
	}
	log.Tracef("Float range generator %v%v, %v%v: span %v, halved %v", lowerBracket(iv), lower, upper,
		upperBracket(iv), g.span, g.halved)
	return &g, nil
}

// NewFloatRangeCCGenerator returns a generator for [lower, upper].
func NewFloatRangeCCGenerator[F Float](src BitSource, lower, upper F) (*FloatRangeGenerator[F], error) {
	return NewFloatRangeGenerator(src, lower, upper, ClosedClosed)
}

// NewFloatRangeCOGenerator returns a generator for [lower, upper).
func NewFloatRangeCOGenerator[F Float](src BitSource, lower, upper F) (*FloatRangeGenerator[F], error) {
	return NewFloatRangeGenerator(src, lower, upper, ClosedOpen)
}

// NewFloatRangeOCGenerator returns a generator for (lower, upper].
func NewFloatRangeOCGenerator[F Float](src BitSource, lower, upper F) (*FloatRangeGenerator[F], error) {
	return NewFloatRangeGenerator(src, lower, upper, OpenClosed)
}

// NewFloatRangeOOGenerator returns a generator for (lower, upper).
func NewFloatRangeOOGenerator[F Float](src BitSource, lower, upper F) (*FloatRangeGenerator[F], error) {
	return NewFloatRangeGenerator(src, lower, upper, OpenOpen)
}

// Next returns the next value of the range. A closed range with lower == upper returns
// lower without consuming any bits.
func (g *FloatRangeGenerator[F]) Next() F {
	if g.lower == g.upper {
		return g.lower
	}
	for {
		u := g.unit(g.src)
		var r F
		if g.halved {
			r = 2 * (g.lower/2 + g.span*u)
		} else {
			r = g.lower + g.span*u
		}
		if r > g.upper {
			r = g.upper
		}
		if r < g.lower {
			r = g.lower
		}
		if g.iv.UpperOpen() && r == g.upper {
			continue
		}
		if g.iv.LowerOpen() && r == g.lower {
			continue
		}
		return r
	}
}

// Lower returns the lower bound of the range.
func (g *FloatRangeGenerator[F]) Lower() F { return g.lower }

// Upper returns the upper bound of the range.
func (g *FloatRangeGenerator[F]) Upper() F { return g.upper }

// Interval returns which bounds are included.
func (g *FloatRangeGenerator[F]) Interval() Interval { return g.iv }

func floatRangeDraw[F Float](src BitSource, lower, upper F, iv Interval) (F, error) {
	g, err := newFloatRange(src, lower, upper, iv)
	if err != nil {
		return 0, err
	}
	return g.Next(), nil
}

// FloatRangeCC returns a float uniformly distributed over [lower, upper].
func FloatRangeCC[F Float](src BitSource, lower, upper F) (F, error) {
	return floatRangeDraw(src, lower, upper, ClosedClosed)
}

// FloatRangeCO returns a float uniformly distributed over [lower, upper).
func FloatRangeCO[F Float](src BitSource, lower, upper F) (F, error) {
	return floatRangeDraw(src, lower, upper, ClosedOpen)
}

// FloatRangeOC returns a float uniformly distributed over (lower, upper].
func FloatRangeOC[F Float](src BitSource, lower, upper F) (F, error) {
	return floatRangeDraw(src, lower, upper, OpenClosed)
}

// FloatRangeOO returns a float uniformly distributed over (lower, upper).
func FloatRangeOO[F Float](src BitSource, lower, upper F) (F, error) {
	return floatRangeDraw(src, lower, upper, OpenOpen)
}
