package components

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/jobbie007/bossfight/config"
)

// ClockData measures the wall-clock delta between updates. The delta is
// clamped so a window drag or debugger pause cannot launch entities across
// the arena.
type ClockData struct {
	DeltaSeconds float64

	last time.Time
}

// Tick computes the delta since the previous call. The first call after a
// reset reports zero.
func (c *ClockData) Tick(now time.Time) {
	if c.last.IsZero() {
		c.last = now
		c.DeltaSeconds = 0
		return
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt > config.Time.MaxDelta {
		dt = config.Time.MaxDelta
	}
	if dt < 0 {
		dt = 0
	}
	c.DeltaSeconds = dt
}

// Reset clears the reference time so the next Tick reports zero. Used when
// returning from pause or a scene change.
func (c *ClockData) Reset() {
	c.last = time.Time{}
	c.DeltaSeconds = 0
}

var Clock = donburi.NewComponentType[ClockData]()
