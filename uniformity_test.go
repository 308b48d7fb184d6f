package rtrand_test

import (
	"testing"

	"github.com/TomTonic/rtrand"
	"github.com/TomTonic/rtrand/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alpha is the significance level of the goodness-of-fit tests. Tests on the deterministic
// sources use fixed seeds.
const alpha = 0.001

func requireUniform(t *testing.T, counts []int) {
	t.Helper()
	x2, p := stats.UniformityTest(counts)
	require.Greater(t, p, alpha, "chi2 %.2f for %d bins, counts %v", x2, len(counts), counts)
}

func TestRangeSmallRangeIsUniform(t *testing.T) {
	src := rtrand.NewDPRNG(0x0123)
	counts := make([]int, 4)
	const draws = 1_000_000
	for range draws {
		v, err := rtrand.RangeCC(src, 0, 3)
		require.NoError(t, err)
		counts[v]++
	}
	for _, c := range counts {
		assert.InDelta(t, draws/4, c, 2_000)
	}
	requireUniform(t, counts)
}

// TestRangeNoModuloBias uses a range of seven values: a modulo reduction of 3 bit draws
// would give 0 twice the weight of the other values.
func TestRangeNoModuloBias(t *testing.T) {
	for _, name := range rtrand.SourceNames {
		t.Run(name, func(t *testing.T) {
			src, err := rtrand.NewSource(name, 77)
			require.NoError(t, err)
			g, err := rtrand.NewRangeCCGenerator[uint8](src, 0, 6)
			require.NoError(t, err)
			counts := make([]int, 7)
			for range 700_000 {
				counts[g.Next()]++
			}
			requireUniform(t, counts)
		})
	}
}

func TestRangeSignedIsUniform(t *testing.T) {
	src := rtrand.NewMT19937(4242)
	counts := make([]int, 200)
	for range 400_000 {
		v, err := rtrand.RangeOO[int64](src, -101, 100)
		require.NoError(t, err)
		counts[v+100]++
	}
	requireUniform(t, counts)
}

func TestRangeLargeArbitraryRangeIsUniform(t *testing.T) {
	// 3 * 2^61 values; bucket by the top bits of the offset
	src := rtrand.NewPCG(31337)
	g, err := rtrand.NewRangeCCGenerator[uint64](src, 0, 3<<61-1)
	require.NoError(t, err)
	counts := make([]int, 3)
	for range 300_000 {
		counts[g.Next()>>61]++
	}
	requireUniform(t, counts)
}

func TestFloatBucketsAreUniform(t *testing.T) {
	const bins = 64
	tests := []struct {
		name string
		f    func(rtrand.BitSource) float64
	}{
		{"Float64CO", rtrand.Float64CO},
		{"Float64OC", rtrand.Float64OC},
		{"Float64CC", rtrand.Float64CC},
		{"Float64OO", rtrand.Float64OO},
		{"Float64SignedCC", func(s rtrand.BitSource) float64 { return (rtrand.Float64SignedCC(s) + 1) / 2 }},
		{"Float32CO", func(s rtrand.BitSource) float64 { return float64(rtrand.Float32CO(s)) }},
		{"PreciseFloat64OC", rtrand.PreciseFloat64OC},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := rtrand.NewDPRNG(0xF1F1)
			counts := make([]int, bins)
			for range 640_000 {
				b := int(tc.f(src) * bins)
				if b == bins {
					b-- // closed upper bound
				}
				counts[b]++
			}
			requireUniform(t, counts)
		})
	}
}

// TestPreciseIsUniformInMeasure checks the precise generators on a log scale near zero, where
// the equidistant generators have no resolution left: [2^-k-1, 2^-k) must receive half the
// mass of [2^-k, 2^-k+1).
func TestPreciseIsUniformInMeasure(t *testing.T) {
	src := rtrand.NewDPRNG(0xDEC0DE)
	const draws = 2_000_000
	counts := make([]int, 8)
	small := 0
	for range draws {
		f := rtrand.PreciseFloat64CO(src)
		if f < 0x1p-40 {
			small++
		}
		b := int(f * 8)
		counts[b]++
	}
	requireUniform(t, counts)
	// P(f < 2^-40) = 2^-40: practically never, but reachable
	assert.LessOrEqual(t, small, 1)

	octaves := make([]int, 10)
	for range draws {
		f := rtrand.PreciseFloat32CO(src)
		for k := range octaves {
			upper := float32(1) / float32(uint32(1)<<k)
			if f < upper && f >= upper/2 {
				octaves[k]++
				break
			}
		}
	}
	for k := 1; k < len(octaves); k++ {
		ratio := float64(octaves[k-1]) / float64(octaves[k])
		assert.InDelta(t, 2.0, ratio, 0.2, "octave %d: %v", k, octaves)
	}
}

func TestFloatRangeIsUniform(t *testing.T) {
	src := rtrand.NewDPRNG(0xAB)
	g, err := rtrand.NewFloatRangeOOGenerator(src, -3.0, 5.0)
	require.NoError(t, err)
	counts := make([]int, 16)
	for range 320_000 {
		counts[int((g.Next()+3)*2)]++
	}
	requireUniform(t, counts)
}

func TestClosedFloatCostsAboutOneCall(t *testing.T) {
	cs := rtrand.NewCountingSource(rtrand.NewDPRNG(12))
	const draws = 1_000_000
	for range draws {
		_ = rtrand.Float32CC(cs)
	}
	perDraw := float64(cs.Calls()) / draws
	// 1 + 2^-9 * (expected draws of the fine stage, at most 2)
	assert.InDelta(t, 1.0, perDraw, 0.005)
	assert.Zero(t, cs.Calls64)
}
