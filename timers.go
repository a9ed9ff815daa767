package grapple

import "time"

type timer struct {
	id  uint64
	due time.Duration
	fn  func()
}

// Timers runs one-shot callbacks on the simulation clock. Callbacks fire from
// Advance, on the tick goroutine, so they may touch grapple state directly.
type Timers struct {
	now     time.Duration
	nextID  uint64
	pending []timer
}

// After schedules fn to run once d has elapsed and returns an id for Cancel.
// A non-positive d fires on the next Advance.
func (ts *Timers) After(d time.Duration, fn func()) uint64 {
	if d < 0 {
		d = 0
	}
	ts.nextID++
	ts.pending = append(ts.pending, timer{id: ts.nextID, due: ts.now + d, fn: fn})
	return ts.nextID
}

// Cancel drops a pending callback. It reports false once the callback has
// fired or was already cancelled.
func (ts *Timers) Cancel(id uint64) bool {
	for i, t := range ts.pending {
		if t.id == id {
			ts.pending = append(ts.pending[:i], ts.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock by dt and fires every due callback in schedule order.
func (ts *Timers) Advance(dt time.Duration) {
	ts.now += dt
	var due []timer
	keep := ts.pending[:0]
	for _, t := range ts.pending {
		if t.due <= ts.now {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	ts.pending = keep
	for _, t := range due {
		t.fn()
	}
}
