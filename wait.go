package coopthreads

// Wait suspends the calling thread on semID until notified or, if timeout
// is non-zero, until timeout ticks elapse (C6, spec.md §4.6). A timeout of
// zero means an infinite wait. It returns true iff the thread was released
// by Notify/NotifyAll rather than by timing out.
func (s *Scheduler) Wait(semID int, timeout Tick) bool {
	s.mu.Lock()
	i := s.curThrd
	t := &s.thrds[i]
	t.SemID = semID
	t.Notif = false
	if timeout == 0 {
		t.Inf = true
		t.WaitTo = 0
	} else {
		t.Inf = false
		t.WaitTo = s.tick() + timeout
	}
	s.mu.Unlock()

	s.yield(Wait)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thrds[i].Notif
}

// Notify releases at most one thread waiting on semID, chosen as the first
// such slot in pool order, transitioning it to RUN (C6, spec.md §4.6).
// Safe to call from any goroutine; it does not itself yield, so the
// release only takes effect on the scheduler's next visit to that slot.
func (s *Scheduler) Notify(semID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.thrds {
		t := &s.thrds[i]
		if t.State == Wait && t.SemID == semID {
			t.Notif = true
			t.State = Run
			return
		}
	}
}

// NotifyAll releases every thread currently waiting on semID (C6, spec.md
// §4.6). Like Notify, it takes effect on the scheduler's next visit to
// each released slot.
func (s *Scheduler) NotifyAll(semID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.thrds {
		t := &s.thrds[i]
		if t.State == Wait && t.SemID == semID {
			t.Notif = true
			t.State = Run
		}
	}
}

// promoteWaitIfDue checks slot i's timed-wait deadline; called by Service
// when it visits a WAIT slot on an ordinary pass. It reports whether the
// slot was promoted to RUN by timing out. A thread released by Notify/
// NotifyAll is already in state Run by the time Service visits it, so it
// never reaches this path.
func (s *Scheduler) promoteWaitIfDue(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &s.thrds[i]
	if t.State != Wait || t.Inf || !IsTickOver(s.tick(), t.WaitTo) {
		return false
	}
	t.State = Run
	return true
}
