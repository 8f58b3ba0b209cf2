package game

import "time"

// Clock is a fixed-interval tick scheduler polled from a frame loop.
// At most one tick is due per poll, so a slow frame never produces a burst.
type Clock struct {
	interval time.Duration
	next     time.Time
	running  bool
}

func NewClock(rate int) *Clock {
	c := &Clock{}
	c.setInterval(rate)
	return c
}

func (c *Clock) setInterval(rate int) {
	if rate < 1 {
		rate = 1
	}
	c.interval = time.Second / time.Duration(rate)
}

// Start arms the clock; the first tick is due one interval from now.
func (c *Clock) Start(now time.Time) {
	c.running = true
	c.next = now.Add(c.interval)
}

func (c *Clock) Stop() {
	c.running = false
}

// SetRate changes the tick rate and restarts the interval from now.
func (c *Clock) SetRate(rate int, now time.Time) {
	c.setInterval(rate)
	if c.running {
		c.next = now.Add(c.interval)
	}
}

// Due reports whether a tick should run at now and schedules the next one.
func (c *Clock) Due(now time.Time) bool {
	if !c.running || now.Before(c.next) {
		return false
	}
	c.next = now.Add(c.interval)
	return true
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

func (c *Clock) Running() bool {
	return c.running
}
