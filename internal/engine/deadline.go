package engine

import (
	"context"
	"time"
)

// deadlineStride is the number of Tick calls between two clock reads.
const deadlineStride = 1024

// Deadline is a cooperative stop signal. It expires when the wall-clock
// budget runs out or its context is done, and stays expired afterwards.
// A nil *Deadline never expires.
type Deadline struct {
	ctx     context.Context
	at      time.Time
	now     func() time.Time
	ticks   int
	expired bool
}

// NewDeadline starts a budget measured from now on the monotonic clock.
func NewDeadline(ctx context.Context, budget time.Duration) *Deadline {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Deadline{ctx: ctx, at: time.Now().Add(budget), now: time.Now}
}

// Tick counts one inner-loop iteration and reads the clock every
// deadlineStride calls. It returns true once the deadline has expired.
func (d *Deadline) Tick() bool {
	if d == nil {
		return false
	}
	if d.expired {
		return true
	}
	d.ticks++
	if d.ticks < deadlineStride {
		return false
	}
	d.ticks = 0
	return d.Check()
}

// Check reads the clock and the context immediately.
func (d *Deadline) Check() bool {
	if d == nil {
		return false
	}
	if d.expired {
		return true
	}
	if d.ctx.Err() != nil || !d.now().Before(d.at) {
		d.expired = true
	}
	return d.expired
}

// Expired reports the last observed state without reading the clock.
func (d *Deadline) Expired() bool {
	return d != nil && d.expired
}

// Remaining returns the budget left, or zero when expired.
func (d *Deadline) Remaining() time.Duration {
	if d == nil {
		return time.Duration(1<<63 - 1)
	}
	if d.expired {
		return 0
	}
	left := d.at.Sub(d.now())
	if left < 0 {
		return 0
	}
	return left
}
