// Package timer reads a monotonic high-resolution clock.
package timer

import "time"

// Stamp is a reading of the monotonic clock in nanoseconds. Stamps are only
// meaningful relative to each other within one process.
type Stamp int64

var epoch = time.Now()

// clock is replaced at init on platforms with a native monotonic clock.
var clock = runtimeClock

func runtimeClock() Stamp {
	return Stamp(time.Since(epoch))
}

func Now() Stamp {
	return clock()
}

func Since(start Stamp) time.Duration {
	return time.Duration(Now() - start)
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
