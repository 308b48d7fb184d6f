//go:build windows

package timing

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// TimeStamp is a raw QueryPerformanceCounter reading.
// Values are only comparable within the same process.
type TimeStamp = int64

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(fmt.Sprintf("QueryPerformanceFrequency failed: %v", err))
	}
	return freq
}

// SampleTime returns a timestamp with the highest possible precision on the current runtime system.
func SampleTime() TimeStamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// DiffTimeStamps returns the difference between two timestamps in nanoseconds.
// It has constant runtime but contains an integer division.
func DiffTimeStamps(tEarlier, tLater TimeStamp) int64 {
	result := tLater - tEarlier
	result *= int64(1_000_000_000) // ns per sec
	result /= qpcFrequency
	return result
}
