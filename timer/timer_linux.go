package timer

import (
	"log"

	"golang.org/x/sys/unix"
)

var clockGettime = unix.ClockGettime

// runtimeOffset maps runtimeClock readings onto the CLOCK_MONOTONIC scale so
// a failed read can fall back without mixing time bases.
var runtimeOffset Stamp

func init() {
	var ts unix.Timespec
	if err := clockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		log.Println("timer: CLOCK_MONOTONIC unavailable, using runtime clock:", err)
		return
	}
	runtimeOffset = Stamp(ts.Nano()) - runtimeClock()
	clock = monotonicClock
}

func monotonicClock() Stamp {
	var ts unix.Timespec
	if err := clockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return runtimeClock() + runtimeOffset
	}
	return Stamp(ts.Nano())
}
