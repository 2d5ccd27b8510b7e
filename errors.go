package coopthreads

import "errors"

// Sentinel errors returned by scheduler operations. These mirror the
// original library's small error taxonomy (SUCCESS/INV_ARG/ERR_LIMIT),
// plus two additions specific to a goroutine-hosted scheduler:
// ErrAlreadyRunning guards against the concurrent-caller scenario that simply
// couldn't occur on the original's single physical execution unit, and
// ErrNotRunning is a named condition that no operation returns.
var (
	// ErrInvalidArg is returned by ScheduleThread when proc is nil.
	ErrInvalidArg = errors.New("coopthreads: invalid argument")

	// ErrLimit is returned by ScheduleThread when the thread pool is full.
	ErrLimit = errors.New("coopthreads: thread pool limit reached")

	// ErrAlreadyRunning is returned by Service when called on a scheduler
	// that is already being serviced by another goroutine.
	ErrAlreadyRunning = errors.New("coopthreads: scheduler is already running")

	// ErrNotRunning names the "scheduler is not running" condition. No
	// operation in this package returns it: the yield primitives have no
	// error result, and calling one outside a dispatched thread panics.
	ErrNotRunning = errors.New("coopthreads: scheduler is not running")
)
