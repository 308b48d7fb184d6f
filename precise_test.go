package rtrand

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreciseRejectionLimits(t *testing.T) {
	u32 := uint32(maxUnsignedFixed32LessThanFloatOne)
	assert.Less(t, float32(u32), float32(1<<32))
	u32++
	assert.Equal(t, float32(1<<32), float32(u32), "next integer rounds up to 2^32")

	u64 := uint64(maxUnsignedFixed64LessThanDoubleOne)
	assert.Less(t, float64(u64), float64(1<<64))
	u64++
	assert.Equal(t, float64(1<<64), float64(u64), "next integer rounds up to 2^64")

	s32 := int32(maxSignedFixed32LessThanFloatOne)
	assert.Less(t, float32(s32), float32(1<<31))
	s32++
	assert.Equal(t, float32(1<<31), float32(s32), "next integer rounds up to 2^31")

	s64 := int64(maxSignedFixed64LessThanDoubleOne)
	assert.Less(t, float64(s64), float64(1<<63))
	s64++
	assert.Equal(t, float64(1<<63), float64(s64), "next integer rounds up to 2^63")
}

func TestFermatFactors(t *testing.T) {
	check := func(a, b uint64, exp uint) {
		t.Helper()
		fermat := new(big.Int).Lsh(big.NewInt(1), exp)
		fermat.Add(fermat, big.NewInt(1))
		ba := new(big.Int).SetUint64(a)
		bb := new(big.Int).SetUint64(b)
		assert.Equal(t, 0, new(big.Int).Mul(ba, bb).Cmp(fermat), "%d * %d != 2^%d+1", a, b, exp)
		assert.True(t, ba.ProbablyPrime(20), "%d is not prime", a)
		assert.True(t, bb.ProbablyPrime(20), "%d is not prime", b)
	}
	check(fermat5FactorA, fermat5FactorB, 32)
	check(fermat6FactorA, fermat6FactorB, 64)

	assert.Equal(t, 32, fermat5CoarseCheck.Width)
	assert.Equal(t, 64, fermat6FineCheck.Width)
	assert.Equal(t, ArbitrarySize, fermat5FineCheck.Shape)
}

func TestPreciseFloat32ClosedHit(t *testing.T) {
	src := seq32(0, 0)
	assert.Equal(t, float32(1), PreciseFloat32CC(src))
	assert.True(t, src.exhausted())

	src = seq32(1, 1<<31) // coarse stage misses, no fine draw
	assert.Equal(t, float32(0.5), PreciseFloat32CC(src))
	assert.True(t, src.exhausted())

	src = seq32(0, 1, 1<<30) // fine stage misses
	assert.Equal(t, float32(0.25), PreciseFloat32CC(src))
	assert.True(t, src.exhausted())

	src = seq32(700, 0, 1<<29) // 700 > 640 is redrawn, 1<<29 masks to zero
	assert.Equal(t, float32(1), PreciseFloat32CC(src))
	assert.True(t, src.exhausted())
}

func TestPreciseFloat64ClosedHit(t *testing.T) {
	src := seq64(0, 0)
	assert.Equal(t, 1.0, PreciseFloat64CC(src))
	assert.True(t, src.exhausted())

	src = seq64(5, 1<<63)
	assert.Equal(t, 0.5, PreciseFloat64CC(src))
	assert.True(t, src.exhausted())

	src = seq64(0, 0, 1<<62)
	assert.Equal(t, 1.0, PreciseFloat64SignedCC(src))
	assert.False(t, src.exhausted())
}

func TestPreciseFloat32Values(t *testing.T) {
	tests := []struct {
		name string
		f    func(BitSource) float32
		raw  []uint32
		want float32
	}{
		{"CO smallest", PreciseFloat32CO, []uint32{1}, 0x1p-32},
		{"CO zero", PreciseFloat32CO, []uint32{0}, 0},
		{"CO largest", PreciseFloat32CO, []uint32{0xFFFFFF80, 0xFFFFFF7F}, 1 - 0x1p-24},
		{"CO redraw", PreciseFloat32CO, []uint32{math.MaxUint32, 1 << 31}, 0.5},
		{"OO zero redrawn", PreciseFloat32OO, []uint32{0, 1}, 0x1p-32},
		{"OO largest", PreciseFloat32OO, []uint32{0xFFFFFFFF, 0xFFFFFF7F}, 1 - 0x1p-24},
		{"OC smallest", PreciseFloat32OC, []uint32{0}, 0x1p-32},
		{"OC one", PreciseFloat32OC, []uint32{math.MaxUint32}, 1},
		{"OC rounds to one", PreciseFloat32OC, []uint32{0xFFFFFFF0}, 1},
		{"SignedCO min", PreciseFloat32SignedCO, []uint32{0x80000000}, -1},
		{"SignedCO redraw", PreciseFloat32SignedCO, []uint32{0x7FFFFFFF, 0x40000000}, 0.5},
		{"SignedCO smallest", PreciseFloat32SignedCO, []uint32{0xFFFFFFFF}, -0x1p-31},
		{"SignedOO", PreciseFloat32SignedOO, []uint32{0x80000000, 0x80000001, 0xC0000000}, -0.5},
		{"SignedOC max", PreciseFloat32SignedOC, []uint32{0x80000000}, 1},
		{"SignedCC max", PreciseFloat32SignedCC, []uint32{0, 0}, 1},
		{"SignedCC min", PreciseFloat32SignedCC, []uint32{1, 0x80000000}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := seq32(tc.raw...)
			assert.Equal(t, tc.want, tc.f(src))
			assert.True(t, src.exhausted(), "unexpected number of draws")
		})
	}
}

func TestPreciseFloat64Values(t *testing.T) {
	tests := []struct {
		name string
		f    func(BitSource) float64
		raw  []uint64
		want float64
	}{
		{"CO smallest", PreciseFloat64CO, []uint64{1}, 0x1p-64},
		{"CO largest", PreciseFloat64CO, []uint64{0xFFFFFFFFFFFFFC00, 0xFFFFFFFFFFFFFBFF}, 1 - 0x1p-53},
		{"OO zero redrawn", PreciseFloat64OO, []uint64{0, 3}, 0x3p-64},
		{"OC smallest", PreciseFloat64OC, []uint64{0}, 0x1p-64},
		{"OC one", PreciseFloat64OC, []uint64{math.MaxUint64}, 1},
		{"SignedCO min", PreciseFloat64SignedCO, []uint64{1 << 63}, -1},
		{"SignedCO half", PreciseFloat64SignedCO, []uint64{1 << 62}, 0.5},
		{"SignedOO", PreciseFloat64SignedOO, []uint64{1 << 63, 0xC000000000000000}, -0.5},
		{"SignedOC max", PreciseFloat64SignedOC, []uint64{1 << 63}, 1},
		{"SignedCC min", PreciseFloat64SignedCC, []uint64{1, 1 << 63}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := seq64(tc.raw...)
			assert.Equal(t, tc.want, tc.f(src))
			assert.True(t, src.exhausted(), "unexpected number of draws")
		})
	}
}

func TestPreciseSignedZero(t *testing.T) {
	f := PreciseFloat32SignedCO(seq32(0, 0))
	assert.Equal(t, float32(0), f)
	assert.False(t, math.Signbit(float64(f)))

	f = PreciseFloat32SignedCO(seq32(0, 1<<31))
	assert.Equal(t, float32(0), f)
	assert.True(t, math.Signbit(float64(f)), "top bit of the coin draw selects -0")

	f = PreciseFloat32SignedCC(seq32(1, 0, 0x7FFFFFFF))
	assert.False(t, math.Signbit(float64(f)))

	d := PreciseFloat64SignedOO(seq64(0, 1<<63))
	assert.True(t, math.Signbit(d))
	d = PreciseFloat64SignedCO(seq64(0, 1))
	assert.False(t, math.Signbit(d))
}

// TestPreciseDiffersFromEquidistant documents the difference between the two families:
// a raw value below 2^12 is not even one step of the equidistant grid.
func TestPreciseDiffersFromEquidistant(t *testing.T) {
	raw := uint64(0x1234)
	assert.Equal(t, 0x1p-52, Float64CO(seq64(raw)))
	assert.Equal(t, float64(0x1234)*0x1p-64, PreciseFloat64CO(seq64(raw)))
	assert.Equal(t, float32(0), Float32CO(seq32(0x1FF)))
	assert.Equal(t, float32(0x1FF)*0x1p-32, PreciseFloat32CO(seq32(0x1FF)))
}

func TestPreciseRandomDrawsStayInRange(t *testing.T) {
	src := NewDPRNG(0x9EC15E)
	for range 200_000 {
		f := PreciseFloat32CO(src)
		require.True(t, f >= 0 && f < 1, "PreciseFloat32CO: %v", f)
		g := float64(f) * (1 << 32)
		require.Equal(t, math.Trunc(g), g, "PreciseFloat32CO: %v is not on the 2^-32 grid", f)

		f = PreciseFloat32OO(src)
		require.True(t, f > 0 && f < 1, "PreciseFloat32OO: %v", f)
		f = PreciseFloat32OC(src)
		require.True(t, f > 0 && f <= 1, "PreciseFloat32OC: %v", f)
		f = PreciseFloat32CC(src)
		require.True(t, f >= 0 && f <= 1, "PreciseFloat32CC: %v", f)
		f = PreciseFloat32SignedCO(src)
		require.True(t, f >= -1 && f < 1, "PreciseFloat32SignedCO: %v", f)
		f = PreciseFloat32SignedOO(src)
		require.True(t, f > -1 && f < 1, "PreciseFloat32SignedOO: %v", f)
		f = PreciseFloat32SignedOC(src)
		require.True(t, f > -1 && f <= 1, "PreciseFloat32SignedOC: %v", f)

		d := PreciseFloat64CO(src)
		require.True(t, d >= 0 && d < 1, "PreciseFloat64CO: %v", d)
		d = PreciseFloat64OO(src)
		require.True(t, d > 0 && d < 1, "PreciseFloat64OO: %v", d)
		d = PreciseFloat64OC(src)
		require.True(t, d > 0 && d <= 1, "PreciseFloat64OC: %v", d)
		d = PreciseFloat64CC(src)
		require.True(t, d >= 0 && d <= 1, "PreciseFloat64CC: %v", d)
		d = PreciseFloat64SignedCO(src)
		require.True(t, d >= -1 && d < 1, "PreciseFloat64SignedCO: %v", d)
		d = PreciseFloat64SignedOC(src)
		require.True(t, d > -1 && d <= 1, "PreciseFloat64SignedOC: %v", d)
		d = PreciseFloat64SignedCC(src)
		require.True(t, d >= -1 && d <= 1, "PreciseFloat64SignedCC: %v", d)
	}
}
