//go:build linux

package host

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/embedded-go/coopthreads"
)

func monotonicTickFunc(resolution time.Duration) coopthreads.TickFunc {
	origin := clockMonotonicNanos()
	return func() coopthreads.Tick {
		return coopthreads.Tick(uint64(clockMonotonicNanos()-origin) / uint64(resolution))
	}
}

func clockMonotonicNanos() int64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		// CLOCK_MONOTONIC is always supported on linux; a failure here
		// means the ts argument itself is broken.
		panic("host: clock_gettime(CLOCK_MONOTONIC): " + err.Error())
	}
	return ts.Nano()
}
