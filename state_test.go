package coopthreads

import "testing"

func TestThreadState_String(t *testing.T) {
	tests := []struct {
		state ThreadState
		want  string
	}{
		{Empty, "EMPTY"},
		{New, "NEW"},
		{Run, "RUN"},
		{Hole, "HOLE"},
		{Idle, "IDLE"},
		{Wait, "WAIT"},
		{ThreadState(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("ThreadState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestThreadState_started(t *testing.T) {
	started := map[ThreadState]bool{
		Empty: false,
		New:   false,
		Run:   true,
		Hole:  false,
		Idle:  true,
		Wait:  true,
	}
	for state, want := range started {
		if got := state.started(); got != want {
			t.Errorf("%s.started() = %v, want %v", state, got, want)
		}
	}
}

func TestEmptyIsZeroValue(t *testing.T) {
	var s ThreadState
	if s != Empty {
		t.Fatalf("zero value of ThreadState must be Empty, got %s", s)
	}
}
