package loop

import (
	"slices"
	"time"
)

// Verify Manual implements Scheduler at compile time.
var _ Scheduler = (*Manual)(nil)

// Manual is a Scheduler driven by an explicit virtual clock.
// Callbacks only run inside Advance or Flush, in due-time order; callbacks due
// at the same instant run in the order they were scheduled.
type Manual struct {
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	m       *Manual
	due     time.Time
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// NewManual creates a manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the virtual time.
func (m *Manual) Now() time.Time {
	return m.now
}

// After schedules fn to run once the virtual clock reaches now+d.
// Negative durations are treated as zero.
func (m *Manual) After(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{m: m, due: m.now.Add(d), seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	t.m.remove(t)
	return true
}

// Advance moves the clock forward by d, running every callback that falls due
// on the way, including callbacks scheduled by earlier callbacks.
func (m *Manual) Advance(d time.Duration) {
	end := m.now.Add(d)
	for {
		t := m.nextDue(end, true)
		if t == nil {
			break
		}
		m.now = t.due
		m.remove(t)
		t.fired = true
		t.fn()
	}
	m.now = end
}

// Flush runs every callback already due at the current time.
func (m *Manual) Flush() {
	m.Advance(0)
}

// Pending returns the number of callbacks waiting to run.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// NextDue returns the time of the earliest pending callback.
func (m *Manual) NextDue() (time.Time, bool) {
	t := m.nextDue(time.Time{}, false)
	if t == nil {
		return time.Time{}, false
	}
	return t.due, true
}

// nextDue returns the earliest pending timer, restricted to timers due at or
// before limit when bounded is set.
func (m *Manual) nextDue(limit time.Time, bounded bool) *manualTimer {
	var next *manualTimer
	for _, t := range m.pending {
		if bounded && t.due.After(limit) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *Manual) remove(t *manualTimer) {
	if i := slices.Index(m.pending, t); i >= 0 {
		m.pending = slices.Delete(m.pending, i, i+1)
	}
}
