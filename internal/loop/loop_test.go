package loop

import (
	"testing"
	"testing/synctest"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManual_AdvanceRunsInDueOrder(t *testing.T) {
	m := NewManual(epoch)
	var got []string

	m.After(300*time.Millisecond, func() { got = append(got, "c") })
	m.After(100*time.Millisecond, func() { got = append(got, "a") })
	m.After(200*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(250 * time.Millisecond)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("after 250ms got %v, want [a b]", got)
	}

	m.Advance(50 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("after 300ms got %v, want [a b c]", got)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}
}

func TestManual_SameInstantKeepsScheduleOrder(t *testing.T) {
	m := NewManual(epoch)
	var got []int
	for i := range 5 {
		m.After(time.Second, func() { got = append(got, i) })
	}
	m.Advance(time.Second)
	for i, v := range got {
		if v != i {
			t.Fatalf("got %v, want ascending order", got)
		}
	}
}

func TestManual_StopPreventsCallback(t *testing.T) {
	m := NewManual(epoch)
	ran := false
	timer := m.After(time.Second, func() { ran = true })

	if !timer.Stop() {
		t.Error("first Stop() = false, want true")
	}
	if timer.Stop() {
		t.Error("second Stop() = true, want false")
	}
	m.Advance(2 * time.Second)
	if ran {
		t.Error("stopped callback ran")
	}
}

func TestManual_StopAfterFireReturnsFalse(t *testing.T) {
	m := NewManual(epoch)
	timer := m.After(0, func() {})
	m.Flush()
	if timer.Stop() {
		t.Error("Stop() after firing = true, want false")
	}
}

func TestManual_NestedSchedulingWithinWindow(t *testing.T) {
	m := NewManual(epoch)
	var at []time.Duration

	m.After(100*time.Millisecond, func() {
		at = append(at, m.Now().Sub(epoch))
		m.After(100*time.Millisecond, func() {
			at = append(at, m.Now().Sub(epoch))
		})
	})

	m.Advance(time.Second)
	if len(at) != 2 {
		t.Fatalf("ran %d callbacks, want 2", len(at))
	}
	if at[0] != 100*time.Millisecond || at[1] != 200*time.Millisecond {
		t.Errorf("callback times = %v, want [100ms 200ms]", at)
	}
	if got := m.Now().Sub(epoch); got != time.Second {
		t.Errorf("clock = %v, want 1s", got)
	}
}

func TestManual_NegativeDelayIsImmediate(t *testing.T) {
	m := NewManual(epoch)
	ran := false
	m.After(-time.Second, func() { ran = true })
	m.Flush()
	if !ran {
		t.Error("negative delay callback did not run on Flush")
	}
}

func TestManual_NextDue(t *testing.T) {
	m := NewManual(epoch)
	if _, ok := m.NextDue(); ok {
		t.Error("NextDue() ok on empty scheduler")
	}
	m.After(3*time.Second, func() {})
	m.After(time.Second, func() {})
	due, ok := m.NextDue()
	if !ok || !due.Equal(epoch.Add(time.Second)) {
		t.Errorf("NextDue() = %v, %v; want epoch+1s, true", due, ok)
	}
}

func TestDeferred_DispatchRunsOnCaller(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := NewDeferred()
		defer s.Close()

		ran := 0
		s.After(time.Second, func() { ran++ })

		id := <-s.Fired()
		if ran != 0 {
			t.Fatal("callback ran before Dispatch")
		}
		if !s.Dispatch(id) {
			t.Fatal("Dispatch() = false for pending timer")
		}
		if ran != 1 {
			t.Errorf("ran = %d, want 1", ran)
		}
		if s.Dispatch(id) {
			t.Error("second Dispatch() = true, want false")
		}
	})
}

func TestDeferred_StoppedTimerIgnored(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := NewDeferred()
		defer s.Close()

		ran := false
		timer := s.After(time.Second, func() { ran = true })
		keep := s.After(2*time.Second, func() {})

		if !timer.Stop() {
			t.Fatal("Stop() = false for pending timer")
		}

		id := <-s.Fired()
		s.Dispatch(id)
		if ran {
			t.Error("stopped timer callback ran")
		}
		keep.Stop()
		if s.Pending() != 0 {
			t.Errorf("Pending() = %d, want 0", s.Pending())
		}
	})
}

func TestDeferred_CloseReleasesPublishers(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		s := NewDeferred()
		for range 32 {
			s.After(time.Millisecond, func() {})
		}
		time.Sleep(10 * time.Millisecond)
		s.Close()
		synctest.Wait()
		<-s.Done()
	})
}

func TestStop_NilSafe(_ *testing.T) {
	Stop(nil)
}
