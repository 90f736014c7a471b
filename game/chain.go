package game

import "time"

// ChainTracker turns a stream of kill times into a combo multiplier. Kills no further apart
// than the window extend the chain up to max; anything slower restarts it at 1.
type ChainTracker struct {
	window time.Duration
	max    int
	last   time.Time
	count  int
}

// NewChainTracker creates a tracker with the window given in seconds
func NewChainTracker(windowSeconds float64, max int) ChainTracker {
	return ChainTracker{
		window: time.Duration(windowSeconds * float64(time.Second)),
		max:    max,
	}
}

// RegisterKill records a kill at now and returns the chain value it scores with
func (c *ChainTracker) RegisterKill(now time.Time) int {
	if !c.last.IsZero() && now.Sub(c.last) <= c.window {
		c.count = min(c.count+1, c.max)
	} else {
		c.count = 1
	}
	c.last = now
	return c.count
}

// Count returns the current chain value
func (c *ChainTracker) Count() int { return c.count }

// Reset forgets the previous kill
func (c *ChainTracker) Reset() {
	c.last = time.Time{}
	c.count = 0
}
