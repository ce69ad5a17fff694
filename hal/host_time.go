package hal

import "time"

// frameClock measures the interval between successive frame updates.
type frameClock struct {
	now  func() time.Time
	last time.Time
}

func newFrameClock() *frameClock {
	return &frameClock{now: time.Now}
}

// tick returns the time since the previous tick, or zero on the first call.
func (c *frameClock) tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}
