package testutils

import "sync/atomic"

// Clock is a settable clock safe for concurrent use.
type Clock struct {
	now atomic.Int64
}

func NewClock(now int64) *Clock {
	c := &Clock{}
	c.now.Store(now)
	return c
}

func (c *Clock) UnixTimestamp() int64 {
	return c.now.Load()
}

func (c *Clock) Set(now int64) {
	c.now.Store(now)
}

func (c *Clock) Advance(seconds int64) {
	c.now.Add(seconds)
}
