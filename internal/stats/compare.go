package stats

import (
	"fmt"
	"math"
	"slices"

	"github.com/TomTonic/rtrand"
)

// Comparison is the confidence that sample A is faster than sample B by at least
// RelativeSpeedup (0.1 = 10% faster).
type Comparison struct {
	RelativeSpeedup float64
	Confidence      float64
}

const MinimumDataPoints = 11

// CompareRuntimes compares two samples of runtimes (in float64, e.g., nanoseconds per draw)
// and computes the confidence that sample A is faster than sample B by at least
// the specified relative speedups. The precisionLevel parameter controls the number of bootstrap
// repetitions (higher values yield more precise results of the statistical tests but take longer to compute).
// If there are not enough data points in either sample, an error is returned.
func CompareRuntimes(sampleA, sampleB []float64, relativeSpeedupsToTest []float64, precisionLevel uint64) ([]Comparison, error) {
	if len(sampleA) < MinimumDataPoints || len(sampleB) < MinimumDataPoints {
		return nil, fmt.Errorf("not enough data points: need at least %d runtimes for each of A and B, got %d and %d",
			MinimumDataPoints, len(sampleA), len(sampleB))
	}
	speedups := slices.Clone(relativeSpeedupsToTest)
	if len(speedups) == 0 {
		speedups = []float64{0.0}
	}
	slices.Sort(speedups)

	conf := BootstrapConfidence(sampleA, sampleB, speedups, precisionLevel, 0)

	result := make([]Comparison, 0, len(speedups))
	for _, t := range speedups {
		result = append(result, Comparison{RelativeSpeedup: t, Confidence: conf[t]})
	}
	return result, nil
}

// bootstrapSample returns a bootstrap sample (sampling with replacement) drawn from xs.
// The returned slice has the same length as xs. Indices are drawn without modulo bias
// from src. The input slice is not modified.
func bootstrapSample(xs []float64, src rtrand.BitSource) []float64 {
	n := len(xs)
	sample := make([]float64, n)
	if n == 0 {
		return sample
	}
	idx, err := rtrand.NewRangeCOGenerator(src, 0, n)
	if err != nil {
		panic(err) // n > 0
	}
	for i := range sample {
		sample[i] = xs[idx.Next()]
	}
	return sample
}

// BootstrapConfidence estimates the probability (confidence) that the relative speedup of A over B
// meets or exceeds each requested threshold using bootstrap resampling.
//
// The function performs `reps` bootstrap replicates. In each replicate it draws a bootstrap sample
// from A and from B, computes their medians and evaluates the relative speedup as:
//
//	delta = 1 - median(A_sample)/median(B_sample)
//
// A positive delta indicates A is faster than B by that relative amount. The returned map
// holds, per threshold, the fraction of replicates with delta >= threshold.
//
// Numerical and edge-case behavior:
//   - If `reps` is zero the function returns a map with each threshold mapped to math.NaN().
//   - If either sample median is NaN (e.g. for an empty sample) the replicate counts for no threshold.
//   - A median(B) of (nearly) zero is replaced by a small, scale-aware epsilon
//     max(|median(B)| * 1e-12, SmallestNonzeroFloat64).
//   - If both medians are equal (including both zero or both infinite in the same direction),
//     delta = 0.
//
// prngSeed seeds the DPRNG used for resampling. Use 0 for a random seed, or a specific non-zero
// seed to reproduce results across runs.
func BootstrapConfidence(A, B []float64, thresholds []float64, reps uint64, prngSeed uint64) map[float64]float64 {
	confidenceForThreshold := make(map[float64]float64, len(thresholds))

	if reps == 0 {
		for _, threshold := range thresholds {
			confidenceForThreshold[threshold] = math.NaN()
		}
		return confidenceForThreshold
	}

	rng := rtrand.NewDPRNG(prngSeed)
	counts := make(map[float64]uint64, len(thresholds))

	for range reps {
		medA := quickMedian(bootstrapSample(A, rng), rng)
		medB := quickMedian(bootstrapSample(B, rng), rng)

		var delta float64
		if math.IsNaN(medA) || math.IsNaN(medB) {
			delta = math.NaN()
		} else if medA == medB {
			delta = 0.0
		} else {
			eps := math.Max(math.Abs(medB)*1e-12, math.SmallestNonzeroFloat64)
			denom := medB
			if math.Abs(medB) < eps {
				denom = eps
			}
			delta = 1.0 - medA/denom
		}

		for _, threshold := range thresholds {
			if delta >= threshold {
				counts[threshold]++
			}
		}
	}

	for _, threshold := range thresholds {
		confidenceForThreshold[threshold] = float64(counts[threshold]) / float64(reps)
	}
	return confidenceForThreshold
}
