// Package toast shows short-lived notifications above the status bar.
// Each toast dismisses itself through the scheduler, so expiry runs on the
// UI loop like every other deferred callback.
package toast

import (
	"slices"
	"strings"
	"time"

	"github.com/llehouerou/slides/internal/loop"
	"github.com/llehouerou/slides/internal/ui/render"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// DefaultDuration is how long a toast stays on screen.
const DefaultDuration = 3 * time.Second

// MaxVisible caps the stack; the oldest toast goes first.
const MaxVisible = 3

// Level selects the toast marker and color.
type Level int

const (
	Info Level = iota
	Success
	Error
)

// Notification is one toast.
type Notification struct {
	ID      int64
	Level   Level
	Message string
	timer   loop.Timer
}

// Stack holds the visible toasts.
type Stack struct {
	sched    loop.Scheduler
	duration time.Duration
	items    []Notification
	nextID   int64
}

// New creates a stack whose toasts last duration. A non-positive duration
// uses DefaultDuration.
func New(sched loop.Scheduler, duration time.Duration) *Stack {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Stack{sched: sched, duration: duration}
}

// Push shows message and returns its id.
func (s *Stack) Push(level Level, message string) int64 {
	s.nextID++
	id := s.nextID

	if len(s.items) >= MaxVisible {
		loop.Stop(s.items[0].timer)
		s.items = slices.Delete(s.items, 0, 1)
	}
	n := Notification{ID: id, Level: level, Message: message}
	n.timer = s.sched.After(s.duration, func() { s.Dismiss(id) })
	s.items = append(s.items, n)
	return id
}

func (s *Stack) Info(message string) int64    { return s.Push(Info, message) }
func (s *Stack) Success(message string) int64 { return s.Push(Success, message) }
func (s *Stack) Error(message string) int64   { return s.Push(Error, message) }

// Dismiss removes the toast with id. It reports whether it was shown.
func (s *Stack) Dismiss(id int64) bool {
	i := slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return false
	}
	loop.Stop(s.items[i].timer)
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Clear removes every toast.
func (s *Stack) Clear() {
	for _, n := range s.items {
		loop.Stop(n.timer)
	}
	s.items = nil
}

// Len returns the number of visible toasts.
func (s *Stack) Len() int {
	return len(s.items)
}

// Items returns the visible toasts, oldest first.
func (s *Stack) Items() []Notification {
	return slices.Clone(s.items)
}

// View renders the toasts in a bordered box of the given width.
func (s *Stack) View(width int) string {
	if len(s.items) == 0 || width < 6 {
		return ""
	}

	t := styles.T()
	innerWidth := width - 2
	lines := make([]string, 0, len(s.items))
	for _, n := range s.items {
		marker, style := "•", t.S().Base
		switch n.Level {
		case Success:
			marker, style = "✓", t.S().Success
		case Error:
			marker, style = "✗", t.S().Error
		}
		text := render.Truncate(n.Message, innerWidth-2)
		line := style.Render(marker) + " " + t.S().Base.Render(text)
		lines = append(lines, line)
	}

	return t.Panel(false).Width(innerWidth).Render(strings.Join(lines, "\n"))
}
