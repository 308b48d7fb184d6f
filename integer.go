package rtrand

import (
	"fmt"
	"unsafe"
)

// Integer is the set of integer types the range functions accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// drawWidth returns the raw draw width for T: 32 bit draws serve all types up to 32 bits.
func drawWidth[T Integer]() int {
	var zero T
	if unsafe.Sizeof(zero) <= 4 {
		return 32
	}
	return 64
}

// closedBounds converts the bounds of iv into the equivalent inclusive bounds [lo, hi].
// Arithmetic on T cannot overflow here: min+1 is only formed when min < max and max-1
// only when max > min.
func closedBounds[T Integer](min, max T, iv Interval) (lo, hi T, err error) {
	if iv > OpenOpen {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidRange, iv)
	}
	if max < min {
		return 0, 0, fmt.Errorf("%w: max %v < min %v", ErrInvalidRange, max, min)
	}
	lo, hi = min, max
	if iv.LowerOpen() || iv.UpperOpen() {
		if min == max {
			return 0, 0, fmt.Errorf("%w: %v%v, %v%v is empty", ErrInvalidRange, lowerBracket(iv), min, max, upperBracket(iv))
		}
		if iv.LowerOpen() {
			lo++
		}
		if iv.UpperOpen() {
			hi--
		}
		if hi < lo {
			return 0, 0, fmt.Errorf("%w: %v%v, %v%v is empty", ErrInvalidRange, lowerBracket(iv), min, max, upperBracket(iv))
		}
	}
	return lo, hi, nil
}

func lowerBracket(iv Interval) string {
	if iv.LowerOpen() {
		return "("
	}
	return "["
}

func upperBracket(iv Interval) string {
	if iv.UpperOpen() {
		return ")"
	}
	return "]"
}

// describe analyzes the inclusive range [lo, hi]. Signed types are handled by
// reinterpreting both bounds as two's complement uint64 values: their difference
// modulo 2^64 is the exact (non-negative) distance hi-lo.
func describe[T Integer](lo, hi T) RangeDescriptor {
	return analyzeRange(uint64(hi)-uint64(lo), drawWidth[T]())
}

// offset maps v in [0, SizeMinusOne] to lo+v with wraparound-safe unsigned addition.
func offset[T Integer](lo T, v uint64) T {
	return T(uint64(lo) + v)
}

func rangeDraw[T Integer](src BitSource, min, max T, iv Interval) (T, error) {
	lo, hi, err := closedBounds(min, max, iv)
	if err != nil {
		return 0, err
	}
	d := describe(lo, hi)
	return offset(lo, d.Draw(src)), nil
}

// RangeCC returns a value uniformly distributed over [min, max] without modulo bias.
// It returns ErrInvalidRange if max < min. A range with min == max still consumes one draw.
func RangeCC[T Integer](src BitSource, min, max T) (T, error) {
	return rangeDraw(src, min, max, ClosedClosed)
}

// RangeCO returns a value uniformly distributed over [min, max).
// It returns ErrInvalidRange if max <= min.
func RangeCO[T Integer](src BitSource, min, max T) (T, error) {
	return rangeDraw(src, min, max, ClosedOpen)
}

// RangeOC returns a value uniformly distributed over (min, max].
// It returns ErrInvalidRange if max <= min.
func RangeOC[T Integer](src BitSource, min, max T) (T, error) {
	return rangeDraw(src, min, max, OpenClosed)
}

// RangeOO returns a value uniformly distributed over (min, max).
// It returns ErrInvalidRange if there is no integer strictly between min and max.
func RangeOO[T Integer](src BitSource, min, max T) (T, error) {
	return rangeDraw(src, min, max, OpenOpen)
}
