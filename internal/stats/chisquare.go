package stats

import "gonum.org/v1/gonum/stat/distuv"

// ChiSquare computes the Pearson chi-square statistic for a slice of observed counts.
// expected is the expected count per bin and must be > 0.
// It returns the statistic Σ (observed_i - expected)^2 / expected as a float64.
func ChiSquare(counts []int, expected float64) float64 {
	var x2 float64
	for _, o := range counts {
		diff := float64(o) - expected
		x2 += (diff * diff) / expected
	}
	return x2
}

// ChiSquarePValue returns the p-value P(χ²_df ≥ x2) of the chi-squared distribution.
func ChiSquarePValue(x2 float64, df int) float64 {
	if df <= 0 {
		return 1.0 // trivial
	}
	return distuv.ChiSquared{K: float64(df)}.Survival(x2)
}

// UniformityTest runs a chi-square goodness-of-fit test of counts against the uniform
// distribution over len(counts) bins. It returns the statistic and its p-value.
// A small p-value (e.g. below 0.01) is evidence against uniformity.
// With fewer than two bins or no observations there is nothing to test and p is 1.
func UniformityTest(counts []int) (x2, p float64) {
	if len(counts) < 2 {
		return 0, 1
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0, 1
	}
	expected := float64(total) / float64(len(counts))
	x2 = ChiSquare(counts, expected)
	return x2, ChiSquarePValue(x2, len(counts)-1)
}
