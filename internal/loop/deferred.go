package loop

import (
	"sync"
	"time"
)

// Verify Deferred implements Scheduler at compile time.
var _ Scheduler = (*Deferred)(nil)

// Deferred is a Scheduler backed by real timers.
//
// A timer goroutine never runs the callback itself: it only publishes the
// timer ID on Fired. The loop owner reads the ID (in bubbletea, through a
// command that waits on the channel) and calls Dispatch from the loop
// goroutine. Stopping a timer forgets its ID, so a firing that was already
// in flight is ignored by Dispatch.
type Deferred struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]*deferredTimer

	fired chan uint64
	done  chan struct{}
	once  sync.Once
}

type deferredTimer struct {
	d     *Deferred
	id    uint64
	fn    func()
	timer *time.Timer
}

// NewDeferred creates a real-time scheduler.
func NewDeferred() *Deferred {
	return &Deferred{
		pending: make(map[uint64]*deferredTimer),
		fired:   make(chan uint64, 16),
		done:    make(chan struct{}),
	}
}

// Now returns the wall clock time.
func (s *Deferred) Now() time.Time {
	return time.Now()
}

// After schedules fn to be dispatched on the loop after d.
func (s *Deferred) After(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	s.next++
	t := &deferredTimer{d: s, id: s.next, fn: fn}
	s.pending[t.id] = t
	s.mu.Unlock()

	t.timer = time.AfterFunc(d, func() {
		select {
		case s.fired <- t.id:
		case <-s.done:
		}
	})
	return t
}

// Stop implements Timer.
func (t *deferredTimer) Stop() bool {
	t.d.mu.Lock()
	_, ok := t.d.pending[t.id]
	delete(t.d.pending, t.id)
	t.d.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	return ok
}

// Fired delivers the IDs of timers whose delay elapsed.
func (s *Deferred) Fired() <-chan uint64 {
	return s.fired
}

// Done is closed once the scheduler is closed.
func (s *Deferred) Done() <-chan struct{} {
	return s.done
}

// Dispatch runs the callback of the given timer if it is still pending.
// It must be called from the loop goroutine.
func (s *Deferred) Dispatch(id uint64) bool {
	s.mu.Lock()
	t, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	t.fn()
	return true
}

// Pending returns the number of timers not yet dispatched or stopped.
func (s *Deferred) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close stops every timer and releases goroutines waiting to publish.
func (s *Deferred) Close() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		for id, t := range s.pending {
			if t.timer != nil {
				t.timer.Stop()
			}
			delete(s.pending, id)
		}
		s.mu.Unlock()
	})
}
