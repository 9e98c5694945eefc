// Package loop provides the scheduling primitives for the single UI event loop.
//
// The slideshow core never sleeps and never starts goroutines. Every delayed
// step (advance interval, transition phase, palette execution delay) is a
// callback registered with a Scheduler, and every callback runs on the loop
// goroutine. Manual drives callbacks from a virtual clock for tests; Deferred
// uses real timers but hands firings back to the loop owner for dispatch.
package loop

import "time"

// Timer is a pending callback that can be canceled.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was already stopped.
	Stop() bool
}

// Scheduler registers delayed callbacks on the event loop.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) Timer
}

// Stop stops t if it is non-nil. It is a convenience for the common
// "cancel the previous handle" pattern.
func Stop(t Timer) {
	if t != nil {
		t.Stop()
	}
}
