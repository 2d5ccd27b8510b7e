package coopthreads

// ThreadProc is a registered thread's entry procedure. arg is the opaque
// argument passed to ScheduleThread.
type ThreadProc func(arg any)

// threadEventKind distinguishes why a dispatched thread handed control back
// to the scheduler.
type threadEventKind uint8

const (
	eventYielded threadEventKind = iota
	eventTerminated
)

type threadEvent struct {
	kind threadEventKind
}

// TCB is a thread control block: one pool slot, field-for-field equivalent
// to the original coop_thrd_ctx_t (spec.md §3), adjusted for the Go
// concurrency primitives used in place of jmp_buf (see DESIGN.md, Open
// Question resolutions).
type TCB struct {
	// Proc is the thread's entry procedure. Nil only when State is Empty.
	Proc ThreadProc
	// Name is an optional, human-readable thread name.
	Name string
	// StackSize is the requested stack reservation in bytes. It is purely
	// informational in this implementation: the thread's actual stack is a
	// goroutine stack, sized and grown by the Go runtime. Kept for API
	// parity, introspection, and debug logging.
	StackSize int
	// Arg is the opaque argument passed to Proc.
	Arg any

	// State is this slot's current tagged state.
	State ThreadState

	// IdleTo is the deadline tick this thread is idle until. Meaningful
	// only when State == Idle.
	IdleTo Tick
	// SwitchTick is the tick at which the scheduler last handed control to
	// this thread. Maintained only when the yield-after option is enabled.
	SwitchTick Tick

	// SemID is the semaphore id this thread is waiting on. Meaningful only
	// when State == Wait.
	SemID int
	// WaitTo is the deadline tick for a timed wait. Meaningful only when
	// State == Wait and Inf is false.
	WaitTo Tick
	// Notif is set when a Notify/NotifyAll call targeted this thread while
	// it was waiting.
	Notif bool
	// Inf is set for an infinite (untimed) wait; WaitTo is then ignored.
	Inf bool

	// Depth is this thread's 1-based stack-region ordinal, assigned on
	// first dispatch. The first thread ever started has depth 1. Zero
	// until then.
	Depth uint32

	// execCtx is where the thread's goroutine blocks between yields,
	// waiting to be resumed by the scheduler. It is recreated on every
	// yield (see continuation's single-use discipline), standing in for
	// the original's exe_ctx. entry_ctx has no separate representation
	// here: the original captured it purely to unwind the main stack back
	// to a thread's entry frame on termination, which the flattened
	// goroutine model has no need to do (DESIGN.md, Open Question
	// resolution 4).
	execCtx *continuation

	// fromThread carries yield/terminate notifications from this thread's
	// goroutine back to the scheduler loop.
	fromThread chan threadEvent
}

// reset clears a TCB back to its zero (Empty) state, releasing its
// goroutine-handoff channels.
func (t *TCB) reset() {
	*t = TCB{}
}
