package orbit

import "time"

// debounce is an owned one-shot timer. It never spawns goroutines: the owner
// polls it from its event handlers and frame tick, so fn always runs on the
// caller's thread. Arming while pending replaces the old deadline.
type debounce struct {
	delay    time.Duration
	deadline time.Time
	armed    bool
	fn       func()
}

func newDebounce(delay time.Duration, fn func()) debounce {
	return debounce{delay: delay, fn: fn}
}

// arm schedules fn for now+delay, cancelling any pending deadline.
func (d *debounce) arm(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.armed = true
}

// cancel drops the pending deadline without running fn.
func (d *debounce) cancel() {
	d.armed = false
}

// pending reports whether a deadline is scheduled.
func (d *debounce) pending() bool {
	return d.armed
}

// poll runs fn if the deadline has passed. Returns true if fn ran.
func (d *debounce) poll(now time.Time) bool {
	if !d.armed || now.Before(d.deadline) {
		return false
	}
	d.armed = false
	if d.fn != nil {
		d.fn()
	}
	return true
}
