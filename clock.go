package rental

import "time"

// Clock assigns creation timestamps, in Unix milliseconds.
//
// Stamps are strictly increasing for a given Clock, even when several
// properties are created within the same millisecond, so they can serve as
// identities.
type Clock struct {
	Now  func() time.Time // defaults to time.Now
	last int64
}

// Stamp returns the next creation timestamp.
func (c *Clock) Stamp() int64 {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	ms := now().UTC().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ms
}

// Observe makes sure the next stamps are after ms. Use it after loading
// records stamped by another process.
func (c *Clock) Observe(ms int64) {
	if ms > c.last {
		c.last = ms
	}
}

// CreatedTime converts a creation timestamp back into a time.
func CreatedTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
