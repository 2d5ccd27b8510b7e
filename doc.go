// Package coopthreads implements a lightweight cooperative threading
// scheduler for environments without a preemptive, general-purpose runtime.
//
// # Architecture
//
// A [Scheduler] holds a fixed-size pool of thread control blocks ([TCB]).
// An application registers thread procedures with [Scheduler.ScheduleThread],
// then calls [Scheduler.Service] (or [Scheduler.Run], an alias) to drive them
// to completion. Each registered thread runs on its own goroutine once the
// scheduler dispatches it for the first time — in the original C
// implementation every thread's stack was carved, via recursion and
// setjmp/longjmp, out of a single shared call stack; in Go every goroutine
// already has an independent, runtime-managed stack, so that carving is
// simply replaced by starting a goroutine (see DESIGN.md, "Open Question
// resolutions", item 1). The scheduler still tracks the exact same `depth`/
// HOLE bookkeeping the original specifies, since it is part of the
// library's observable, testable state machine.
//
// Threads cooperate by calling [Scheduler.Yield], [Scheduler.Idle],
// [Scheduler.YieldAfter], or [Scheduler.Wait] from within their own
// procedure; these suspend the calling goroutine and hand control back to
// the scheduler loop. At most one thread procedure body ever executes at a
// time, by construction.
//
// # Optional subsystems
//
// Timed sleeping ([Scheduler.Idle]) and the semaphore-style wait/notify
// subsystem ([Scheduler.Wait], [Scheduler.Notify], [Scheduler.NotifyAll])
// are always available. [WithIdle] switches the system-wide deep idle on or
// off, and [WithYieldAfter] switches the dispatch-tick record that
// [Scheduler.YieldAfter] measures from; both default to enabled. [WithWait]
// is stored but does not change any behaviour.
//
// # Host integration
//
// The scheduler is driven by two host-supplied callbacks: a tick source
// ([WithTickFunc]) and, when idling is enabled, a deep-idle callback
// ([WithIdleFunc]). The host subpackage provides ready-made adapters
// (monotonic-clock-backed ticks and a time.Sleep-backed idle callback) for a
// goroutine-hosted (as opposed to bare-metal) use of this library.
//
// # Usage
//
//	sched := coopthreads.NewScheduler(
//	    coopthreads.WithTickFunc(host.TickFunc(time.Millisecond)),
//	    coopthreads.WithIdleFunc(host.SleepIdleFunc(time.Millisecond)),
//	)
//
//	sched.ScheduleThread(func(arg any) {
//	    for i := 0; i < 3; i++ {
//	        sched.Yield()
//	    }
//	}, "worker", 0, nil)
//
//	if err := sched.Service(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package-level default scheduler
//
// For parity with the original library's process-wide singleton API, the
// free functions [ScheduleThread], [Service], [ThreadName], [Yield],
// [Idle], [YieldAfter], [Wait], [Notify], and [NotifyAll] delegate to a
// package-level default [Scheduler]. New code that needs more than one
// independent scheduler (e.g. in tests) should construct its own via
// [NewScheduler] instead.
package coopthreads
