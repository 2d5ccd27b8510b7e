package coopthreads

// Service runs the scheduler loop until no registered threads remain,
// dispatching each runnable slot in strict round-robin order (spec.md §4.4,
// §5). It must be called from exactly one goroutine at a time per
// Scheduler; a concurrent or reentrant call returns ErrAlreadyRunning.
//
// When Service observes that every slot has gone Empty, it resets the
// scheduler back to its freshly constructed state and returns nil,
// matching the original's self-reinitializing _sched_init(true) on exit.
func (s *Scheduler) Service() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	for {
		s.mu.Lock()
		if s.busyN == 0 {
			s.mu.Unlock()
			break
		}
		s.curThrd = (s.curThrd + 1) % len(s.thrds)
		i := s.curThrd
		s.mu.Unlock()

		if s.cfg.idleEnabled {
			s.systemIdle()
		}

		s.mu.Lock()
		state := s.thrds[i].State
		s.mu.Unlock()

		switch state {
		case Empty, Hole:
			continue

		case Idle:
			if !s.promoteIdleIfDue(i) {
				continue
			}
			s.dispatchRun(i)

		case Wait:
			if !s.promoteWaitIfDue(i) {
				continue
			}
			s.dispatchRun(i)

		case Run:
			s.dispatchRun(i)

		case New:
			s.dispatchNew(i)
		}
	}

	s.mu.Lock()
	s.reinit()
	s.mu.Unlock()
	return nil
}

// Run is an alias for Service.
func (s *Scheduler) Run() error { return s.Service() }

// dispatchRun resumes an already-started thread's saved continuation and
// blocks until it yields again or terminates (spec.md §4.4's RUN case).
func (s *Scheduler) dispatchRun(i int) {
	s.mu.Lock()
	t := &s.thrds[i]
	if s.cfg.yieldAfter {
		t.SwitchTick = s.tick()
	}
	ec := t.execCtx
	fc := t.fromThread
	if b := s.log().Trace(); b.Enabled() {
		b.Int(`slot`, i).Log(`resuming thread`)
	}
	s.mu.Unlock()

	ec.resume(0)
	ev := <-fc

	if ev.kind == eventTerminated {
		s.handleTermination(i)
	}
}

// dispatchNew reserves the thread's stack (in this implementation: starts
// its goroutine) and blocks until its first yield or immediate return
// (spec.md §4.3/§4.4's NEW case).
func (s *Scheduler) dispatchNew(i int) {
	s.mu.Lock()
	t := &s.thrds[i]
	s.depth++
	t.Depth = s.depth
	if s.cfg.yieldAfter {
		t.SwitchTick = s.tick()
	}
	proc, arg, fc := t.Proc, t.Arg, t.fromThread
	if b := s.log().Debug(); b.Enabled() {
		b.Int(`slot`, i).Int(`depth`, int(t.Depth)).Str(`name`, t.Name).
			Log(`thread stack reserved; entering procedure`)
	}
	s.mu.Unlock()

	go runThread(proc, arg, fc)

	ev := <-fc
	if ev.kind == eventTerminated {
		s.handleTermination(i)
	}
}

// runThread is the body of every thread's goroutine: run the procedure to
// completion, then report termination. It holds no reference to the
// Scheduler, so it never needs to reacquire its mutex.
func runThread(proc ThreadProc, arg any, fc chan threadEvent) {
	proc(arg)
	fc <- threadEvent{kind: eventTerminated}
}

// handleTermination implements the original's _mark_unwind_thrds plus its
// two call sites (spec.md §4.4, "Thread termination"): a thread at less
// than the current main-stack depth becomes a HOLE; the most-shallow
// terminator instead recomputes the new depth D, reclaims every now-
// unreachable HOLE (depth > D), and sets sched.depth = D. The original's
// final step — select an unwind target and longjmp to its entry_ctx — has
// no equivalent here: the flattened scheduler loop has nothing to unwind,
// it simply continues its next iteration (DESIGN.md, Open Question
// resolution 4).
func (s *Scheduler) handleTermination(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &s.thrds[i]

	if t.Depth < s.depth {
		if b := s.log().Debug(); b.Enabled() {
			b.Int(`slot`, i).Int(`depth`, int(t.Depth)).Log(`thread terminated; holding (shallower thread still active)`)
		}
		t.State = Hole
		s.holeN++
		return
	}

	if b := s.log().Debug(); b.Enabled() {
		b.Int(`slot`, i).Int(`depth`, int(t.Depth)).Log(`thread terminated; most shallow, unwinding`)
	}
	t.reset()
	s.busyN--

	var newDepth uint32
	for j := range s.thrds {
		if s.thrds[j].State.started() && s.thrds[j].Depth > newDepth {
			newDepth = s.thrds[j].Depth
		}
	}

	for j := range s.thrds {
		if s.thrds[j].State == Hole && s.thrds[j].Depth > newDepth {
			if b := s.log().Debug(); b.Enabled() {
				b.Int(`slot`, j).Log(`hole reclaimed`)
			}
			s.thrds[j].reset()
			s.busyN--
			s.holeN--
		}
	}

	s.depth = newDepth
}
