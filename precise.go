package rtrand

import "math"

// The precise generators convert a raw draw r into a float as an integer and divide it by
// 2^32 (2^64) by lowering the binary exponent field. Small outputs keep all significant bits
// of r, so values near zero are much finer than the 2^-23 (2^-52) grid of the equidistant
// generators. The outputs are not equidistant: a representable value near 1 is less likely
// than one near 0. That is intended. The distribution is uniform in measure: every
// sub-interval receives probability mass proportional to its length.
//
// Integer to float conversion rounds to nearest even. The constants below are the largest
// integers that do not round up to the next power of two (which would turn into 1 after
// the exponent shift). Above 2^(w-1) the float spacing is 2^(w-p) for p significand bits,
// and the halfway point rounds up because the power of two has an even significand.
const (
	maxUnsignedFixed32LessThanFloatOne  = 1<<32 - 1<<7 - 1  // 0xFFFFFF7F
	maxUnsignedFixed64LessThanDoubleOne = 1<<64 - 1<<10 - 1 // 0xFFFFFFFFFFFFFBFF
	maxSignedFixed32LessThanFloatOne    = 1<<31 - 1<<6 - 1  // 0x7FFFFFBF
	maxSignedFixed64LessThanDoubleOne   = 1<<63 - 1<<9 - 1  // 0x7FFFFFFFFFFFFDFF
)

// Prime factors of the Fermat numbers 2^32+1 and 2^64+1. A closed interval [0, 1] on the
// 2^-32 (2^-64) grid has 2^32+1 (2^64+1) points; the upper one is selected by two
// independent bounded draws that must both hit zero, with probability
// 1/(a*b) = 1/(2^w+1). The factorizations are checked by the tests.
const (
	fermat5FactorA = 641
	fermat5FactorB = 6700417
	fermat6FactorA = 274177
	fermat6FactorB = 67280421310721
)

var (
	fermat5CoarseCheck = analyzeRange(fermat5FactorA-1, 32)
	fermat5FineCheck   = analyzeRange(fermat5FactorB-1, 32)
	fermat6CoarseCheck = analyzeRange(fermat6FactorA-1, 64)
	fermat6FineCheck   = analyzeRange(fermat6FactorB-1, 64)
)

// closedHit32 returns true with probability exactly 1/(2^32+1).
func closedHit32(src BitSource) bool {
	return drawRejecting(&fermat5CoarseCheck, src) == 0 && drawRejecting(&fermat5FineCheck, src) == 0
}

// closedHit64 returns true with probability exactly 1/(2^64+1).
func closedHit64(src BitSource) bool {
	return drawRejecting(&fermat6CoarseCheck, src) == 0 && drawRejecting(&fermat6FineCheck, src) == 0
}

// lowerExponent32 divides f by 2^by by decrementing its exponent field.
// f must be zero or have a biased exponent greater than by; zero is returned unchanged.
func lowerExponent32(f float32, by uint32) float32 {
	if f == 0 {
		return f
	}
	return math.Float32frombits(math.Float32bits(f) - by<<float32ExpShift)
}

func lowerExponent64(f float64, by uint64) float64 {
	if f == 0 {
		return f
	}
	return math.Float64frombits(math.Float64bits(f) - by<<float64ExpShift)
}

// signedZero32 flips an independent coin between +0 and -0.
func signedZero32(src BitSource) float32 {
	if src.Uint32()>>31 == 0 {
		return 0
	}
	return math.Float32frombits(1 << 31)
}

func signedZero64(src BitSource) float64 {
	if src.Uint64()>>63 == 0 {
		return 0
	}
	return math.Float64frombits(1 << 63)
}

// PreciseFloat32CO returns a float32 in [0, 1) with full precision near zero.
// Draws above maxUnsignedFixed32LessThanFloatOne are redrawn (probability 2^-25).
func PreciseFloat32CO(src BitSource) float32 {
	for {
		r := src.Uint32()
		if r <= maxUnsignedFixed32LessThanFloatOne {
			return lowerExponent32(float32(r), 32)
		}
	}
}

// PreciseFloat32OO returns a float32 in (0, 1) with full precision near zero.
func PreciseFloat32OO(src BitSource) float32 {
	for {
		r := src.Uint32()
		if r != 0 && r <= maxUnsignedFixed32LessThanFloatOne {
			return lowerExponent32(float32(r), 32)
		}
	}
}

// PreciseFloat32OC returns a float32 in (0, 1] with full precision near zero.
// It maps r to (r+1)/2^32 and never redraws; rounding up to 1 is allowed here.
func PreciseFloat32OC(src BitSource) float32 {
	r := src.Uint32()
	if r == math.MaxUint32 {
		return 1
	}
	return lowerExponent32(float32(r+1), 32)
}

// PreciseFloat32CC returns a float32 in [0, 1] with full precision near zero.
// It costs at least two calls to src: the closed-bound check and the magnitude draw.
func PreciseFloat32CC(src BitSource) float32 {
	if closedHit32(src) {
		return 1
	}
	return lowerExponent32(float32(src.Uint32()), 32)
}

// PreciseFloat32SignedCO returns a float32 in [-1, 1) with full precision near zero.
// The raw draw is read as a two's complement int32 and scaled by 2^-31. A zero is given a
// random sign.
func PreciseFloat32SignedCO(src BitSource) float32 {
	for {
		s := int32(src.Uint32())
		if s > maxSignedFixed32LessThanFloatOne {
			continue
		}
		if s == 0 {
			return signedZero32(src)
		}
		return lowerExponent32(float32(s), 31)
	}
}

// PreciseFloat32SignedOO returns a float32 in (-1, 1) with full precision near zero.
func PreciseFloat32SignedOO(src BitSource) float32 {
	for {
		s := int32(src.Uint32())
		if s > maxSignedFixed32LessThanFloatOne || s < -maxSignedFixed32LessThanFloatOne {
			continue
		}
		if s == 0 {
			return signedZero32(src)
		}
		return lowerExponent32(float32(s), 31)
	}
}

// PreciseFloat32SignedOC returns a float32 in (-1, 1] with full precision near zero.
func PreciseFloat32SignedOC(src BitSource) float32 {
	return -PreciseFloat32SignedCO(src)
}

// PreciseFloat32SignedCC returns a float32 in [-1, 1] with full precision near zero.
func PreciseFloat32SignedCC(src BitSource) float32 {
	if closedHit32(src) {
		return 1
	}
	s := int32(src.Uint32())
	if s == 0 {
		return signedZero32(src)
	}
	return lowerExponent32(float32(s), 31)
}

// PreciseFloat64CO returns a float64 in [0, 1) with full precision near zero.
// Draws above maxUnsignedFixed64LessThanDoubleOne are redrawn (probability 2^-54).
func PreciseFloat64CO(src BitSource) float64 {
	for {
		r := src.Uint64()
		if r <= maxUnsignedFixed64LessThanDoubleOne {
			return lowerExponent64(float64(r), 64)
		}
	}
}

// PreciseFloat64OO returns a float64 in (0, 1) with full precision near zero.
func PreciseFloat64OO(src BitSource) float64 {
	for {
		r := src.Uint64()
		if r != 0 && r <= maxUnsignedFixed64LessThanDoubleOne {
			return lowerExponent64(float64(r), 64)
		}
	}
}

// PreciseFloat64OC returns a float64 in (0, 1] with full precision near zero.
func PreciseFloat64OC(src BitSource) float64 {
	r := src.Uint64()
	if r == math.MaxUint64 {
		return 1
	}
	return lowerExponent64(float64(r+1), 64)
}

// PreciseFloat64CC returns a float64 in [0, 1] with full precision near zero.
// The upper bound is returned with probability 1/(2^64+1).
func PreciseFloat64CC(src BitSource) float64 {
	if closedHit64(src) {
		return 1
	}
	return lowerExponent64(float64(src.Uint64()), 64)
}

// PreciseFloat64SignedCO returns a float64 in [-1, 1) with full precision near zero.
func PreciseFloat64SignedCO(src BitSource) float64 {
	for {
		s := int64(src.Uint64())
		if s > maxSignedFixed64LessThanDoubleOne {
			continue
		}
		if s == 0 {
			return signedZero64(src)
		}
		return lowerExponent64(float64(s), 63)
	}
}

// PreciseFloat64SignedOO returns a float64 in (-1, 1) with full precision near zero.
func PreciseFloat64SignedOO(src BitSource) float64 {
	for {
		s := int64(src.Uint64())
		if s > maxSignedFixed64LessThanDoubleOne || s < -maxSignedFixed64LessThanDoubleOne {
			continue
		}
		if s == 0 {
			return signedZero64(src)
		}
		return lowerExponent64(float64(s), 63)
	}
}

// PreciseFloat64SignedOC returns a float64 in (-1, 1] with full precision near zero.
func PreciseFloat64SignedOC(src BitSource) float64 {
	return -PreciseFloat64SignedCO(src)
}

// PreciseFloat64SignedCC returns a float64 in [-1, 1] with full precision near zero.
func PreciseFloat64SignedCC(src BitSource) float64 {
	if closedHit64(src) {
		return 1
	}
	s := int64(src.Uint64())
	if s == 0 {
		return signedZero64(src)
	}
	return lowerExponent64(float64(s), 63)
}
