package grapple

import (
	"testing"
	"time"
)

func TestTimersFireInOrder(t *testing.T) {
	var ts Timers
	var fired []string
	late := ts.After(300*time.Millisecond, func() { fired = append(fired, "late") })
	ts.After(100*time.Millisecond, func() { fired = append(fired, "early") })
	ts.After(-time.Second, func() { fired = append(fired, "now") })

	ts.Advance(0)
	if len(fired) != 1 || fired[0] != "now" {
		t.Fatalf("fired %v, want [now]", fired)
	}
	ts.Advance(99 * time.Millisecond)
	if len(fired) != 1 {
		t.Fatalf("fired %v too early", fired)
	}
	ts.Advance(time.Millisecond)
	ts.Advance(time.Second)
	if len(fired) != 3 || fired[1] != "early" || fired[2] != "late" {
		t.Fatalf("fired %v, want [now early late]", fired)
	}
	if ts.Cancel(late) {
		t.Fatalf("Cancel returned true for a fired timer")
	}
}

func TestTimersCancel(t *testing.T) {
	var ts Timers
	fired := false
	id := ts.After(time.Second, func() { fired = true })
	if !ts.Cancel(id) {
		t.Fatalf("Cancel returned false for a pending timer")
	}
	if ts.Cancel(id) {
		t.Fatalf("Cancel returned true twice")
	}
	ts.Advance(2 * time.Second)
	if fired {
		t.Fatalf("cancelled timer fired")
	}
}

func TestTimersScheduleFromCallback(t *testing.T) {
	var ts Timers
	count := 0
	ts.After(time.Second, func() {
		count++
		ts.After(time.Second, func() { count++ })
	})
	ts.Advance(time.Second)
	if count != 1 || len(ts.pending) != 1 {
		t.Fatalf("count = %d, pending = %d", count, len(ts.pending))
	}
	ts.Advance(time.Second)
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}
