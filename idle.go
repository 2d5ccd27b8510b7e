package coopthreads

// Idle suspends the calling thread until at least period ticks have
// elapsed (C5, spec.md §4.5). A period of zero is equivalent to Yield.
//
// The idle option (enabled by default) only controls systemIdle. With it
// disabled, Idle still records the deadline and IDLE state, and Service
// still promotes the slot back to RUN when it visits it after the deadline,
// but the host's deep-idle callback is never invoked: Service keeps cycling
// over the pool while every thread is idle.
func (s *Scheduler) Idle(period Tick) {
	if period == 0 {
		s.yield(Run)
		return
	}

	s.mu.Lock()
	i := s.curThrd
	s.thrds[i].IdleTo = s.tick() + period
	s.idleN++
	s.mu.Unlock()

	s.yield(Idle)
}

// promoteIdleIfDue checks slot i's deadline without yet dispatching it;
// called by Service when it visits an IDLE slot on an ordinary pass. It
// reports whether the slot was promoted to RUN.
func (s *Scheduler) promoteIdleIfDue(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &s.thrds[i]
	if t.State != Idle || !IsTickOver(s.tick(), t.IdleTo) {
		return false
	}
	t.State = Run
	s.idleN--
	return true
}

// systemIdle implements C5's system-wide deep idle (spec.md §4.5): while
// every non-hole active thread is idle, repeatedly invoke the host's
// deep-idle callback with the minimum remaining idle duration, waking any
// slots whose deadline has passed, until at least one becomes RUN.
func (s *Scheduler) systemIdle() {
	for {
		s.mu.Lock()
		if s.idleN == 0 || s.busyN-s.holeN != s.idleN {
			s.mu.Unlock()
			return
		}

		now := s.tick()
		var minIdle Tick = MaxTick
		woke := false
		for i := range s.thrds {
			t := &s.thrds[i]
			if t.State != Idle {
				continue
			}
			if IsTickOver(now, t.IdleTo) {
				t.State = Run
				s.idleN--
				woke = true
				continue
			}
			if remaining := t.IdleTo - now; remaining < minIdle {
				minIdle = remaining
			}
		}
		idleFn := s.cfg.idleFunc
		s.mu.Unlock()

		if woke {
			return
		}
		if idleFn != nil {
			idleFn(minIdle)
		}
	}
}
