package parameter

import "time"

// Simulation timing
const (
	// Delta is the fixed simulation step in seconds
	Delta = 1.0 / 60.0

	// TickInterval is Delta as a duration, used by the clock accumulator
	TickInterval = time.Second / 60

	// MaxCatchUpTicks caps how many steps a single frame may run after a stall
	MaxCatchUpTicks = 5

	// FrameUpdateInterval is the rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)
