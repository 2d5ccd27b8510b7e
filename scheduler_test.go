package coopthreads

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleThread_nilProc(t *testing.T) {
	s := NewScheduler()
	err := s.ScheduleThread(nil, "x", 0, nil)
	assert.ErrorIs(t, err, ErrInvalidArg)
}

func TestScheduleThread_limit(t *testing.T) {
	s := NewScheduler(WithMaxThreads(1))
	require.NoError(t, s.ScheduleThread(func(any) {}, "a", 0, nil))
	err := s.ScheduleThread(func(any) {}, "b", 0, nil)
	assert.ErrorIs(t, err, ErrLimit)
}

func TestScheduleThread_defaultsStackSize(t *testing.T) {
	s := NewScheduler()
	require.NoError(t, s.ScheduleThread(func(any) {}, "a", 0, nil))
	assert.Equal(t, DefaultStackSize, s.thrds[0].StackSize)
}

// Scenario 1 (spec §8): single thread runs to completion.
func TestService_singleThreadRunsToCompletion(t *testing.T) {
	s := NewScheduler()
	var ran int32
	require.NoError(t, s.ScheduleThread(func(any) {
		atomic.AddInt32(&ran, 1)
	}, "solo", 0, nil))

	err := s.Service()
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&ran))
	assert.Equal(t, 0, s.busyN)
	assert.Equal(t, -1, s.curThrd)
}

// Scenario 2 (spec §8): two threads ping-pong, each yielding N times, and
// both complete.
func TestService_twoThreadPingPong(t *testing.T) {
	s := NewScheduler()
	var order []string

	require.NoError(t, s.ScheduleThread(func(any) {
		for i := 0; i < 3; i++ {
			order = append(order, "a")
			s.Yield()
		}
	}, "a", 0, nil))

	require.NoError(t, s.ScheduleThread(func(any) {
		for i := 0; i < 3; i++ {
			order = append(order, "b")
			s.Yield()
		}
	}, "b", 0, nil))

	require.NoError(t, s.Service())
	assert.Equal(t, []string{"a", "b", "a", "b", "a", "b"}, order)
}

// Scenario 3 (spec §8): P0 and P1 both yield once; P0 (depth 1) then
// returns while P1 (depth 2) is still alive, becoming a HOLE. Once P1 also
// returns, unwind reclaims both.
func TestService_deepestFirstTerminationCreatesHole(t *testing.T) {
	s := NewScheduler()

	holeObserved := make(chan struct{})
	releaseDeep := make(chan struct{})

	require.NoError(t, s.ScheduleThread(func(any) {
		s.Yield()
	}, "p0-deep", 0, nil))

	require.NoError(t, s.ScheduleThread(func(any) {
		s.Yield()
		<-releaseDeep
	}, "p1-shallow", 0, nil))

	go func() {
		for {
			s.mu.Lock()
			holes, state := s.holeN, s.thrds[0].State
			s.mu.Unlock()
			if holes == 1 && state == Hole {
				close(holeObserved)
				close(releaseDeep)
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()

	require.NoError(t, s.Service())
	<-holeObserved
	assert.Equal(t, 0, s.busyN)
	assert.Equal(t, 0, s.holeN)
	assert.Equal(t, uint32(0), s.depth)
}

func TestService_reentrantCallRejected(t *testing.T) {
	s := NewScheduler()
	started := make(chan struct{})
	release := make(chan struct{})

	require.NoError(t, s.ScheduleThread(func(any) {
		close(started)
		<-release
	}, "blocker", 0, nil))

	done := make(chan error, 1)
	go func() { done <- s.Service() }()
	<-started

	err := s.Service()
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	close(release)
	require.NoError(t, <-done)
}

func TestThreadName(t *testing.T) {
	s := NewScheduler()
	var name string
	require.NoError(t, s.ScheduleThread(func(any) {
		name = s.ThreadName()
	}, "named-thread", 0, nil))
	require.NoError(t, s.Service())
	assert.Equal(t, "named-thread", name)
}

func TestThreadName_outsideDispatch(t *testing.T) {
	s := NewScheduler()
	assert.Equal(t, "", s.ThreadName())
}
