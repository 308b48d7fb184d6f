// Package timing samples timestamps with the highest resolution the platform offers.
// It is used to collect per-draw runtime samples of the generators.
package timing

import (
	"math"
	"sync"
)

const iterationsForCalibration = 1_000_000

var (
	precisionOnce sync.Once
	// precision holds the precision of time measurements obtained via SampleTime() in nanoseconds.
	precision int64
)

// Precision returns the precision of time measurements obtained via SampleTime() on the runtime
// system in nanoseconds. Should return 100ns on Windows systems, and typically between 20ns and
// 100ns on Linux and MacOS systems. The value is measured on the first call and cached.
func Precision() int64 {
	precisionOnce.Do(func() {
		precision = calcMinTimeSample(iterationsForCalibration)
	})
	return precision
}

// calcMinTimeSample returns the smallest positive difference between two consecutive samples.
func calcMinTimeSample(iterations int) int64 {
	minDiff := int64(math.MaxInt64)
	for range iterations {
		t1 := SampleTime()
		t2 := SampleTime()
		diff := DiffTimeStamps(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}

// PerCall runs fn calls times between two timestamps and returns the average time per call
// in nanoseconds.
func PerCall(calls int, fn func()) float64 {
	t1 := SampleTime()
	for range calls {
		fn()
	}
	t2 := SampleTime()
	return float64(DiffTimeStamps(t1, t2)) / float64(calls)
}
