package coopthreads

// yield is the unified suspend primitive underlying Yield, Idle and Wait
// (C7, spec.md §4.1 and §4.6): record the new state against the currently
// dispatched slot, hand control back to the scheduler loop, then block
// until the scheduler resumes this exact slot.
//
// Must only be called from within the currently dispatched thread's own
// goroutine.
func (s *Scheduler) yield(newState ThreadState) {
	s.mu.Lock()
	i := s.curThrd
	t := &s.thrds[i]
	t.State = newState
	ec := newContinuation()
	t.execCtx = ec
	fc := t.fromThread
	s.mu.Unlock()

	fc <- threadEvent{kind: eventYielded}
	ec.capture()
}

// Yield suspends the calling thread, returning it to RUN on the scheduler's
// next pass over its slot (C7).
func (s *Scheduler) Yield() {
	s.yield(Run)
}

// YieldAfter yields only once at least `after` ticks have elapsed since
// this thread was last dispatched, otherwise it returns immediately without
// yielding (C7, spec.md §4.7). It reports whether it actually yielded.
//
// Requires the yield-after option (enabled by default); with it disabled,
// SwitchTick is never updated and stays 0, so YieldAfter yields on every
// call once the current tick has reached `after`, and never before.
func (s *Scheduler) YieldAfter(after Tick) bool {
	s.mu.Lock()
	i := s.curThrd
	switchTick := s.thrds[i].SwitchTick
	now := s.tick()
	s.mu.Unlock()

	if !IsTickOver(now, switchTick+after) {
		return false
	}
	s.yield(Run)
	return true
}
