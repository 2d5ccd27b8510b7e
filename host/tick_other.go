//go:build !linux

package host

import (
	"time"

	"github.com/embedded-go/coopthreads"
)

func monotonicTickFunc(resolution time.Duration) coopthreads.TickFunc {
	origin := time.Now()
	return func() coopthreads.Tick {
		return coopthreads.Tick(uint64(time.Since(origin) / resolution))
	}
}
