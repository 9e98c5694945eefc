package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slides/internal/loop"
	"github.com/llehouerou/slides/internal/ui/testutil"
)

func newStack(t *testing.T) (*Stack, *loop.Manual) {
	t.Helper()
	sched := loop.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return New(sched, 0), sched
}

func messages(s *Stack) []string {
	var out []string
	for _, n := range s.Items() {
		out = append(out, n.Message)
	}
	return out
}

func TestPush_AutoDismissAfterDuration(t *testing.T) {
	s, sched := newStack(t)
	s.Success("3 photo(s) added")

	sched.Advance(DefaultDuration - time.Millisecond)
	assert.Equal(t, 1, s.Len())

	sched.Advance(time.Millisecond)
	assert.Equal(t, 0, s.Len())
}

func TestPush_EachToastHasItsOwnTimer(t *testing.T) {
	s, sched := newStack(t)
	s.Info("first")
	sched.Advance(time.Second)
	s.Info("second")

	sched.Advance(2 * time.Second)
	assert.Equal(t, []string{"second"}, messages(s))
}

func TestPush_DropsOldestBeyondMax(t *testing.T) {
	s, sched := newStack(t)
	for _, m := range []string{"a", "b", "c", "d"} {
		s.Info(m)
	}

	assert.Equal(t, []string{"b", "c", "d"}, messages(s))
	assert.Equal(t, MaxVisible, sched.Pending(), "the dropped toast's timer is stopped")
}

func TestDismiss(t *testing.T) {
	s, sched := newStack(t)
	id := s.Error("boom")

	require.True(t, s.Dismiss(id))
	assert.False(t, s.Dismiss(id))
	assert.Equal(t, 0, sched.Pending())
}

func TestClear(t *testing.T) {
	s, sched := newStack(t)
	s.Info("a")
	s.Info("b")

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, sched.Pending())
}

func TestNew_CustomDuration(t *testing.T) {
	sched := loop.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s := New(sched, time.Second)
	s.Info("short")

	sched.Advance(time.Second)
	assert.Equal(t, 0, s.Len())
}

func TestView(t *testing.T) {
	s, _ := newStack(t)
	assert.Empty(t, s.View(40))

	s.Success("saved")
	s.Error("Caption cannot be empty")
	out := s.View(40)

	lines := testutil.SplitLines(out)
	assert.Len(t, lines, 4, "two toasts plus the border")
	assert.Equal(t, 40, testutil.MaxLineWidth(out))
	plain := testutil.StripANSI(out)
	assert.Contains(t, plain, "✓ saved")
	assert.Contains(t, plain, "✗ Caption cannot be empty")
}

func TestView_TruncatesLongMessages(t *testing.T) {
	s, _ := newStack(t)
	s.Info(strings.Repeat("x", 100))

	assert.Equal(t, 20, testutil.MaxLineWidth(s.View(20)))
}
