// Package host provides reference host-platform adapters for the tick
// source and deep-idle callback that coopthreads.Scheduler treats as
// external collaborators (out of scope for the core scheduler itself).
// Neither adapter is required: any func() coopthreads.Tick / func(Tick)
// pair satisfies the scheduler's configuration options.
package host

import (
	"time"

	"github.com/embedded-go/coopthreads"
)

// TickFunc returns a coopthreads.TickFunc that reports elapsed monotonic
// time since it was created, quantized to resolution. resolution must be
// positive.
//
// On linux it is backed by golang.org/x/sys/unix.ClockGettime against
// CLOCK_MONOTONIC, the same monotonic-clock family the pack's eventloop
// poller uses for its own timing; on other platforms it falls back to the
// standard library's monotonic time.Now reading.
func TickFunc(resolution time.Duration) coopthreads.TickFunc {
	if resolution <= 0 {
		panic("host: resolution must be positive")
	}
	return monotonicTickFunc(resolution)
}

// SleepIdleFunc returns a coopthreads.IdleFunc that sleeps for
// approximately ticks*resolution, suitable for WithIdleFunc on a scheduler
// configured with a TickFunc of the same resolution.
func SleepIdleFunc(resolution time.Duration) coopthreads.IdleFunc {
	if resolution <= 0 {
		panic("host: resolution must be positive")
	}
	return func(ticks coopthreads.Tick) {
		time.Sleep(time.Duration(ticks) * resolution)
	}
}
