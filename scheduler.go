package coopthreads

import (
	"sync"

	"github.com/joeycumines/logiface"
	"golang.org/x/exp/slices"
)

// Scheduler is a round-robin cooperative thread scheduler (spec.md §3's
// "scheduler state", reworked as an explicit instance rather than a
// process-wide singleton — see DESIGN.md, Open Question resolution 2).
//
// The zero value is not usable; construct one with NewScheduler.
type Scheduler struct {
	cfg *schedulerConfig

	// mu guards every field below, including TCB slots. It is held only
	// for the bookkeeping portions of each operation, never across a
	// blocking channel send/receive to a thread's goroutine, so that two
	// threads are never considered "running" concurrently but external
	// callers (ScheduleThread, Notify, NotifyAll) may still safely observe
	// or mutate pool state from another goroutine while Service is
	// running.
	mu sync.Mutex

	thrds []TCB

	curThrd int
	busyN   int
	holeN   int
	idleN   int
	depth   uint32

	running bool
}

// NewScheduler constructs a Scheduler with the given options applied over
// the documented defaults (DefaultMaxThreads, DefaultStackSize, idle/wait/
// yield-after all enabled).
func NewScheduler(opts ...Option) *Scheduler {
	cfg := resolveOptions(opts)
	if cfg.maxThreads <= 0 {
		panic("coopthreads: WithMaxThreads must be positive")
	}
	s := &Scheduler{
		cfg:     cfg,
		thrds:   make([]TCB, cfg.maxThreads),
		curThrd: -1, // sentinel "one before zero", per spec.md §3
	}
	return s
}

func (s *Scheduler) log() *logiface.Logger[logiface.Event] {
	return s.cfg.logger
}

func (s *Scheduler) tick() Tick {
	if s.cfg.tickFunc == nil {
		return 0
	}
	return s.cfg.tickFunc()
}

// ScheduleThread registers a new thread procedure. It scans the pool for
// the first Empty slot, same as the original's linear scan, and fails with
// ErrInvalidArg when proc is nil or ErrLimit when the pool is full. The
// thread's goroutine is not started here; that happens lazily on first
// dispatch inside Service (C3, spec.md §4.3).
//
// stackSize of 0 uses the scheduler's configured default stack size.
// ScheduleThread is safe to call from any goroutine, including
// concurrently with a running Service loop.
func (s *Scheduler) ScheduleThread(proc ThreadProc, name string, stackSize int, arg any) error {
	if proc == nil {
		return ErrInvalidArg
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busyN >= len(s.thrds) {
		return ErrLimit
	}

	if stackSize == 0 {
		stackSize = s.cfg.defaultStackSize
	}

	i := slices.IndexFunc(s.thrds, func(t TCB) bool { return t.State == Empty })
	if i < 0 {
		// unreachable: busyN < len(thrds) guarantees an Empty slot exists.
		return ErrLimit
	}

	s.thrds[i] = TCB{
		Proc:       proc,
		Name:       name,
		StackSize:  stackSize,
		Arg:        arg,
		State:      New,
		fromThread: make(chan threadEvent),
	}
	s.busyN++
	if b := s.log().Debug(); b.Enabled() {
		b.Int(`slot`, i).Str(`name`, name).Log(`thread scheduled`)
	}
	return nil
}

// ThreadName returns the name of the currently dispatched thread. Must only
// be called from within that thread's own procedure.
func (s *Scheduler) ThreadName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.curThrd < 0 || s.curThrd >= len(s.thrds) {
		return ""
	}
	return s.thrds[s.curThrd].Name
}

// reinit resets the scheduler back to its freshly constructed state, run
// once Service observes busyN == 0 (matching the original's _sched_init(true)
// on exit, spec.md §4.4).
func (s *Scheduler) reinit() {
	s.thrds = make([]TCB, len(s.thrds))
	s.curThrd = -1
	s.busyN = 0
	s.holeN = 0
	s.idleN = 0
	s.depth = 0
}
