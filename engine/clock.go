package engine

import (
	"time"
)

// Clock converts elapsed wall time into a whole number of fixed simulation steps
// Not safe for concurrent use; the game loop owns it
type Clock struct {
	source   TimeSource
	step     time.Duration
	maxSteps int

	last    time.Time
	acc     time.Duration
	paused  bool
	ticks   uint64
	dropped uint64
}

// NewClock creates a clock stepping every step, running at most maxSteps per Advance
func NewClock(source TimeSource, step time.Duration, maxSteps int) *Clock {
	return &Clock{
		source:   source,
		step:     max(step, time.Nanosecond),
		maxSteps: max(maxSteps, 1),
		last:     source.Now(),
	}
}

// Advance samples the time source and returns how many steps are due
// Backlog beyond maxSteps is discarded so a stall does not spiral
func (c *Clock) Advance() int {
	now := c.source.Now()
	elapsed := now.Sub(c.last)
	c.last = now
	if c.paused || elapsed <= 0 {
		return 0
	}

	c.acc += elapsed
	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	if n > c.maxSteps {
		c.dropped += uint64(n - c.maxSteps)
		n = c.maxSteps
		c.acc = 0
	}
	c.ticks += uint64(n)
	return n
}

// Pause stops step accumulation; time spent paused is never replayed
func (c *Clock) Pause() {
	c.paused = true
}

// Resume restarts accumulation from the current time
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.last = c.source.Now()
}

// IsPaused reports whether the clock is paused
func (c *Clock) IsPaused() bool {
	return c.paused
}

// Ticks returns the total number of steps handed out
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Dropped returns the number of steps discarded by the catch-up cap
func (c *Clock) Dropped() uint64 {
	return c.dropped
}

// Alpha returns the fraction of a step left in the accumulator, in [0, 1)
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}
