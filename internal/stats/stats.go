// Package stats holds the statistics used to judge random number generators:
// goodness-of-fit tests for drawn samples and bootstrap comparisons of runtime samples.
package stats

import (
	"math"
	"sort"

	"github.com/TomTonic/rtrand"
	"gonum.org/v1/gonum/stat"
)

func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	dataCopy := make([]float64, len(data))
	copy(dataCopy, data)
	sort.Float64s(dataCopy)

	l := len(dataCopy)
	if l%2 == 0 {
		return (dataCopy[l/2-1] + dataCopy[l/2]) / 2
	}
	return dataCopy[l/2]
}

// Statistics returns the mean and the population variance and standard deviation of data.
// For empty data it returns (0, -1, -1).
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}
	mean, variance = stat.PopMeanVariance(data, nil)
	return mean, variance, math.Sqrt(variance)
}

// partition rearranges xs[low:high+1] around the pivot xs[high] and returns its final index.
func partition(xs []float64, low, high int) int {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect finds the k-th smallest element (0-based index) in expected O(n) time.
// Pivots are drawn without bias from [low, high] with src.
// see https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k int, src rtrand.BitSource) float64 {
	low, high := 0, len(xs)-1
	for low < high {
		// low < high rules out ErrInvalidRange
		pivotIndex, _ := rtrand.RangeCC(src, low, high)
		xs[pivotIndex], xs[high] = xs[high], xs[pivotIndex] // move pivot to end
		p := partition(xs, low, high)
		if p == k {
			return xs[p]
		} else if p < k {
			low = p + 1
		} else {
			high = p - 1
		}
	}
	return xs[k]
}

// QuickMedian returns the median in expected O(n) time.
// In case of an odd number of elements, it returns the middle one.
// In case of an even number of elements, it returns the higher of the two middle ones.
// For an empty slice it returns NaN.
// Note: This function modifies the input slice. To avoid this, pass a copy of the slice.
func QuickMedian(xs []float64) float64 {
	return quickMedian(xs, rtrand.NewDPRNG())
}

func quickMedian(xs []float64, src rtrand.BitSource) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return quickselect(xs, len(xs)/2, src)
}
