package core

import (
	"sync"
	"time"
)

// DefaultMaxFrameStep caps the elapsed time applied in one frame.
const DefaultMaxFrameStep = 100 * time.Millisecond

// FrameClock turns tick message timestamps into per-frame elapsed time.
// A stalled terminal or suspended process would otherwise produce one huge
// step, so every step is clamped to MaxStep.
type FrameClock struct {
	MaxStep time.Duration

	mu       sync.Mutex
	last     time.Time
	canceled bool
}

// NewFrameClock creates a clock with the given step cap.
// A non-positive cap selects DefaultMaxFrameStep.
func NewFrameClock(maxStep time.Duration) *FrameClock {
	if maxStep <= 0 {
		maxStep = DefaultMaxFrameStep
	}
	return &FrameClock{MaxStep: maxStep}
}

// Advance records a frame timestamp and returns the time since the previous
// one. The first frame, backwards jumps and canceled clocks yield zero.
func (c *FrameClock) Advance(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.canceled {
		return 0
	}
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.MaxStep {
		return c.MaxStep
	}
	return dt
}

// Reset forgets the previous timestamp, so the next Advance returns zero.
// Used after pauses so the paused interval is not replayed.
func (c *FrameClock) Reset() {
	c.mu.Lock()
	c.last = time.Time{}
	c.mu.Unlock()
}

// Cancel stops the clock. Calling it more than once is harmless.
func (c *FrameClock) Cancel() {
	c.mu.Lock()
	c.canceled = true
	c.mu.Unlock()
}

// Canceled reports whether Cancel has been called.
func (c *FrameClock) Canceled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canceled
}
