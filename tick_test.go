package coopthreads

import "testing"

func TestIsTickOver(t *testing.T) {
	tests := []struct {
		name     string
		now      Tick
		deadline Tick
		want     bool
	}{
		{"well before", 0, 100, false},
		{"exactly at deadline", 100, 100, true},
		{"well after", 200, 100, true},
		{"wraps around near max", 5, MaxTick - 5, true},
		{"just before wraparound deadline", MaxTick - 1, MaxTick, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTickOver(tt.now, tt.deadline); got != tt.want {
				t.Errorf("IsTickOver(%d, %d) = %v, want %v", tt.now, tt.deadline, got, tt.want)
			}
		})
	}
}
