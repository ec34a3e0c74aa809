package engine

import (
	"math"
	"testing"
	"time"
)

func newTestClock() (*Clock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewClock(mock, 10*time.Millisecond, 5), mock
}

func TestClockAccumulates(t *testing.T) {
	c, mock := newTestClock()

	tests := []struct {
		advance time.Duration
		want    int
	}{
		{4 * time.Millisecond, 0},
		{4 * time.Millisecond, 0},
		{4 * time.Millisecond, 1}, // 12ms accumulated
		{28 * time.Millisecond, 3},
		{0, 0},
	}
	for i, tt := range tests {
		mock.Advance(tt.advance)
		if got := c.Advance(); got != tt.want {
			t.Errorf("step %d: Advance() = %d, want %d", i, got, tt.want)
		}
	}
	if c.Ticks() != 4 {
		t.Errorf("Ticks = %d, want 4", c.Ticks())
	}
	if math.Abs(c.Alpha()) > 1e-12 {
		t.Errorf("Alpha = %f, want 0", c.Alpha())
	}
}

func TestClockCatchUpCap(t *testing.T) {
	c, mock := newTestClock()
	mock.Advance(time.Second)
	if got := c.Advance(); got != 5 {
		t.Errorf("Advance after stall = %d, want cap 5", got)
	}
	if c.Dropped() != 95 {
		t.Errorf("Dropped = %d, want 95", c.Dropped())
	}
	mock.Advance(5 * time.Millisecond)
	if got := c.Advance(); got != 0 {
		t.Errorf("backlog replayed: %d steps", got)
	}
}

func TestClockPause(t *testing.T) {
	c, mock := newTestClock()
	c.Pause()
	mock.Advance(time.Second)
	if got := c.Advance(); got != 0 || !c.IsPaused() {
		t.Errorf("paused Advance = %d", got)
	}
	mock.Advance(time.Second)
	c.Resume()
	mock.Advance(20 * time.Millisecond)
	if got := c.Advance(); got != 2 {
		t.Errorf("Advance after resume = %d, want 2", got)
	}
}
