package rtrand

import "math/bits"

// RangeShape classifies a range by the cheapest way to draw from it without bias.
type RangeShape uint8

const (
	// ArbitrarySize ranges need rejection sampling: a masked draw is accepted only if it
	// does not exceed the range size. At least half of all masked draws are accepted.
	ArbitrarySize RangeShape = iota
	// PowerOfTwo ranges are covered exactly by their mask; a single masked draw suffices.
	PowerOfTwo
	// PowerOfPowerOfTwo ranges are power of two ranges whose bit count is a power of two
	// itself (8, 16, 32 or 64 bits, but also 1, 2 and 4). A single shift replaces the mask.
	PowerOfPowerOfTwo
)

func (s RangeShape) String() string {
	switch s {
	case ArbitrarySize:
		return "ArbitrarySize"
	case PowerOfTwo:
		return "PowerOfTwo"
	case PowerOfPowerOfTwo:
		return "PowerOfPowerOfTwo"
	}
	return "RangeShape(invalid)"
}

// RangeDescriptor holds the precomputed analysis of an integer range with
// SizeMinusOne+1 values. It is immutable once created.
//
// Invariants: BitMask >= SizeMinusOne, BitMask == 2^BitCount - 1, BitMask < 2*SizeMinusOne+1.
type RangeDescriptor struct {
	SizeMinusOne uint64
	BitMask      uint64
	BitCount     int
	// Width is the number of raw bits drawn per attempt: 32 (Uint32) or 64 (Uint64).
	Width int
	Shape RangeShape
}

// BitMask returns the smallest value of the form 2^n-1 that is >= sizeMinusOne.
// It smears the highest set bit into all lower positions.
func BitMask(sizeMinusOne uint64) uint64 {
	m := sizeMinusOne
	m |= m >> 1
	m |= m >> 2
	m |= m >> 4
	m |= m >> 8
	m |= m >> 16
	m |= m >> 32
	return m
}

// AnalyzeRange computes the descriptor of a range with sizeMinusOne+1 values drawn with 64 bit draws.
func AnalyzeRange(sizeMinusOne uint64) RangeDescriptor {
	return analyzeRange(sizeMinusOne, 64)
}

// analyzeRange computes the descriptor for the given draw width. The caller guarantees
// that sizeMinusOne fits into width bits.
func analyzeRange(sizeMinusOne uint64, width int) RangeDescriptor {
	mask := BitMask(sizeMinusOne)
	count := bits.OnesCount64(mask)
	shape := ArbitrarySize
	if mask == sizeMinusOne {
		shape = PowerOfTwo
		if count != 0 && count&(count-1) == 0 {
			shape = PowerOfPowerOfTwo
		}
	}
	return RangeDescriptor{
		SizeMinusOne: sizeMinusOne,
		BitMask:      mask,
		BitCount:     count,
		Width:        width,
		Shape:        shape,
	}
}

// raw returns Width uniformly distributed bits.
func (d *RangeDescriptor) raw(src BitSource) uint64 {
	if d.Width == 32 {
		return uint64(src.Uint32())
	}
	return src.Uint64()
}

// drawShifted keeps the BitCount upper bits of one raw draw. Only valid for PowerOfPowerOfTwo.
// For BitCount == Width the shift is zero and the whole draw is returned.
func drawShifted(d *RangeDescriptor, src BitSource) uint64 {
	return d.raw(src) >> uint(d.Width-d.BitCount)
}

// drawMasked keeps the BitCount lower bits of one raw draw. Valid for PowerOfTwo and
// PowerOfPowerOfTwo.
func drawMasked(d *RangeDescriptor, src BitSource) uint64 {
	return d.raw(src) & d.BitMask
}

// drawRejecting masks raw draws until one falls into [0, SizeMinusOne].
// There is no iteration cap: a cap would bias the result. Each attempt succeeds
// with probability > 1/2.
func drawRejecting(d *RangeDescriptor, src BitSource) uint64 {
	for {
		v := d.raw(src) & d.BitMask
		if v <= d.SizeMinusOne {
			return v
		}
	}
}

type drawFunc func(*RangeDescriptor, BitSource) uint64

// strategy returns the draw function for the descriptor's shape.
func (d *RangeDescriptor) strategy() drawFunc {
	switch d.Shape {
	case PowerOfPowerOfTwo:
		return drawShifted
	case PowerOfTwo:
		return drawMasked
	}
	return drawRejecting
}

// Draw returns a value uniformly distributed over [0, SizeMinusOne].
func (d *RangeDescriptor) Draw(src BitSource) uint64 {
	return d.strategy()(d, src)
}
