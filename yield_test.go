package coopthreads

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYieldAfter_skipsBeforeDeadline(t *testing.T) {
	var clock uint64
	s := NewScheduler(WithTickFunc(func() Tick { return Tick(atomic.LoadUint64(&clock)) }))

	var results []bool
	require.NoError(t, s.ScheduleThread(func(any) {
		results = append(results, s.YieldAfter(10))
		atomic.StoreUint64(&clock, 10)
		results = append(results, s.YieldAfter(10))
	}, "p", 0, nil))

	require.NoError(t, s.Service())
	require.Len(t, results, 2)
	assert.False(t, results[0])
	assert.True(t, results[1])
}

func TestYield_multipleThreadsInterleave(t *testing.T) {
	s := NewScheduler()
	var trace []string

	require.NoError(t, s.ScheduleThread(func(any) {
		trace = append(trace, "a1")
		s.Yield()
		trace = append(trace, "a2")
	}, "a", 0, nil))

	require.NoError(t, s.ScheduleThread(func(any) {
		trace = append(trace, "b1")
		s.Yield()
		trace = append(trace, "b2")
	}, "b", 0, nil))

	require.NoError(t, s.Service())
	assert.Equal(t, []string{"a1", "b1", "a2", "b2"}, trace)
}
