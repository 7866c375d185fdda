package engine

import "time"

// Clock measures session time: real time elapsed since start, minus pauses.
// All entity timestamps are durations read from this clock.
type Clock struct {
	provider TimeProvider

	start       time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{provider: provider, start: provider.Now()}
}

// Elapsed returns session time; it stands still while paused
func (c *Clock) Elapsed() time.Duration {
	now := c.provider.Now()
	if c.paused {
		now = c.pauseStart
	}
	return now.Sub(c.start) - c.totalPaused
}

func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.totalPaused += c.provider.Now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

func (c *Clock) IsPaused() bool {
	return c.paused
}

// TotalPaused includes the pause in progress, if any
func (c *Clock) TotalPaused() time.Duration {
	total := c.totalPaused
	if c.paused {
		total += c.provider.Now().Sub(c.pauseStart)
	}
	return total
}

// Reset restarts the clock at zero, unpaused
func (c *Clock) Reset() {
	c.start = c.provider.Now()
	c.paused = false
	c.pauseStart = time.Time{}
	c.totalPaused = 0
}
