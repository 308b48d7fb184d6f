package rtrand

import "math"

// IEEE-754 layout. This file and precise.go are the only places where the bit layout of
// float32/float64 matters. The reinterpretation goes through math.Float32frombits and
// math.Float64frombits, which work on the in-process representation and are
// independent of the byte order of the platform.
const (
	float32MantissaBits = 23
	float32ExcessBits   = 32 - float32MantissaBits // raw bits left over after taking the mantissa
	float32ExpShift     = float32MantissaBits
	float32OneBits      = 0x3F800000 // 1.0: exponent 127, mantissa 0
	float32TwoBits      = 0x40000000 // 2.0: exponent 128, mantissa 0

	float64MantissaBits = 52
	float64ExcessBits   = 64 - float64MantissaBits
	float64ExpShift     = float64MantissaBits
	float64OneBits      = 0x3FF0000000000000
	float64TwoBits      = 0x4000000000000000
)

// Descriptors of the fine closed-bound check: a uniform draw over the 2^m+1 values of a
// closed unit interval with m mantissa bits.
var (
	float32ClosedFine = analyzeRange(1<<float32MantissaBits, 32)
	float64ClosedFine = analyzeRange(1<<float64MantissaBits, 64)
)

// float32Mantissa splits a raw draw into its upper 23 bits (the mantissa) and the
// remaining 9 lower bits.
func float32Mantissa(raw uint32) (mantissa, excess uint32) {
	return raw >> float32ExcessBits, raw & (1<<float32ExcessBits - 1)
}

func float64Mantissa(raw uint64) (mantissa, excess uint64) {
	return raw >> float64ExcessBits, raw & (1<<float64ExcessBits - 1)
}

// float32ClosedHit decides, after the excess bits of a draw were all zero (probability
// 2^-9), whether the upper bound of a closed interval is returned instead of the value
// built from the mantissa. The second stage draws k uniformly from [0, 2^23] and hits for
// k < 2^9, so the overall probability is 2^-9 * 2^9/(2^23+1) = 1/(2^23+1): each of the
// 2^23+1 values of the closed interval is equally likely.
func float32ClosedHit(src BitSource) bool {
	return drawRejecting(&float32ClosedFine, src) < 1<<float32ExcessBits
}

// float64ClosedHit is float32ClosedHit for 52 mantissa and 12 excess bits:
// 2^-12 * 2^12/(2^52+1) = 1/(2^52+1).
func float64ClosedHit(src BitSource) bool {
	return drawRejecting(&float64ClosedFine, src) < 1<<float64ExcessBits
}

// Float32From1To2 returns an equidistant float32 in [1, 2) built from 23 random mantissa bits.
// One Uint32 call.
func Float32From1To2(src BitSource) float32 {
	m, _ := float32Mantissa(src.Uint32())
	return math.Float32frombits(float32OneBits | m)
}

// Float32From2To4 returns an equidistant float32 in [2, 4), spacing 2^-22. One Uint32 call.
func Float32From2To4(src BitSource) float32 {
	m, _ := float32Mantissa(src.Uint32())
	return math.Float32frombits(float32TwoBits | m)
}

// Float32CO returns an equidistant float32 in [0, 1). All 2^23 multiples of 2^-23 in the
// interval are equally likely. It never returns -0, NaN or Inf. One Uint32 call.
func Float32CO(src BitSource) float32 {
	return Float32From1To2(src) - 1
}

// Float32OO returns an equidistant float32 in (0, 1). A zero mantissa is redrawn, which
// happens with probability 2^-23 per call.
func Float32OO(src BitSource) float32 {
	for {
		m, _ := float32Mantissa(src.Uint32())
		if m != 0 {
			return math.Float32frombits(float32OneBits|m) - 1
		}
	}
}

// Float32OC returns an equidistant float32 in (0, 1]. One Uint32 call.
func Float32OC(src BitSource) float32 {
	return 2 - Float32From1To2(src)
}

// Float32CC returns an equidistant float32 in [0, 1]. Each of the 2^23+1 values is
// returned with probability 1/(2^23+1). One Uint32 call, plus on average about
// two more with probability 2^-9.
func Float32CC(src BitSource) float32 {
	m, excess := float32Mantissa(src.Uint32())
	if excess == 0 && float32ClosedHit(src) {
		return 1
	}
	return math.Float32frombits(float32OneBits|m) - 1
}

// Float32SignedCO returns an equidistant float32 in [-1, 1), spacing 2^-22.
func Float32SignedCO(src BitSource) float32 {
	return Float32From2To4(src) - 3
}

// Float32SignedOO returns an equidistant float32 in (-1, 1).
func Float32SignedOO(src BitSource) float32 {
	for {
		m, _ := float32Mantissa(src.Uint32())
		if m != 0 {
			return math.Float32frombits(float32TwoBits|m) - 3
		}
	}
}

// Float32SignedOC returns an equidistant float32 in (-1, 1].
func Float32SignedOC(src BitSource) float32 {
	return 3 - Float32From2To4(src)
}

// Float32SignedCC returns an equidistant float32 in [-1, 1]; each of the 2^23+1 values is
// equally likely.
func Float32SignedCC(src BitSource) float32 {
	m, excess := float32Mantissa(src.Uint32())
	if excess == 0 && float32ClosedHit(src) {
		return 1
	}
	return math.Float32frombits(float32TwoBits|m) - 3
}

// Float64From1To2 returns an equidistant float64 in [1, 2) built from 52 random mantissa bits.
// One Uint64 call.
func Float64From1To2(src BitSource) float64 {
	m, _ := float64Mantissa(src.Uint64())
	return math.Float64frombits(float64OneBits | m)
}

// Float64From2To4 returns an equidistant float64 in [2, 4), spacing 2^-51.
func Float64From2To4(src BitSource) float64 {
	m, _ := float64Mantissa(src.Uint64())
	return math.Float64frombits(float64TwoBits | m)
}

// Float64CO returns an equidistant float64 in [0, 1). All 2^52 multiples of 2^-52 in the
// interval are equally likely. One Uint64 call.
func Float64CO(src BitSource) float64 {
	return Float64From1To2(src) - 1
}

// Float64OO returns an equidistant float64 in (0, 1).
func Float64OO(src BitSource) float64 {
	for {
		m, _ := float64Mantissa(src.Uint64())
		if m != 0 {
			return math.Float64frombits(float64OneBits|m) - 1
		}
	}
}

// Float64OC returns an equidistant float64 in (0, 1].
func Float64OC(src BitSource) float64 {
	return 2 - Float64From1To2(src)
}

// Float64CC returns an equidistant float64 in [0, 1]; each of the 2^52+1 values is
// returned with probability 1/(2^52+1).
func Float64CC(src BitSource) float64 {
	m, excess := float64Mantissa(src.Uint64())
	if excess == 0 && float64ClosedHit(src) {
		return 1
	}
	return math.Float64frombits(float64OneBits|m) - 1
}

// Float64SignedCO returns an equidistant float64 in [-1, 1), spacing 2^-51.
func Float64SignedCO(src BitSource) float64 {
	return Float64From2To4(src) - 3
}

// Float64SignedOO returns an equidistant float64 in (-1, 1).
func Float64SignedOO(src BitSource) float64 {
	for {
		m, _ := float64Mantissa(src.Uint64())
		if m != 0 {
			return math.Float64frombits(float64TwoBits|m) - 3
		}
	}
}

// Float64SignedOC returns an equidistant float64 in (-1, 1].
func Float64SignedOC(src BitSource) float64 {
	return 3 - Float64From2To4(src)
}

// Float64SignedCC returns an equidistant float64 in [-1, 1].
func Float64SignedCC(src BitSource) float64 {
	m, excess := float64Mantissa(src.Uint64())
	if excess == 0 && float64ClosedHit(src) {
		return 1
	}
	return math.Float64frombits(float64TwoBits|m) - 3
}
