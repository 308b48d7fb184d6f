//go:build !windows

package timing

import "time"

// TimeStamp is a relative timestamp with the highest possible precision on the current runtime system.
// Values are only comparable within the same process.
type TimeStamp = time.Time

// SampleTime returns a timestamp with the highest possible precision on the current runtime system.
// time.Now carries a monotonic clock reading, which Sub uses.
func SampleTime() TimeStamp {
	return time.Now()
}

// DiffTimeStamps returns the difference between two timestamps in nanoseconds.
// It is negative if tLater is earlier than tEarlier.
func DiffTimeStamps(tEarlier, tLater TimeStamp) int64 {
	return tLater.Sub(tEarlier).Nanoseconds()
}
