// Package playerbar renders the slideshow status line and the progress bar
// of the auto-advance cycle.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/headerbar"
	"github.com/llehouerou/slides/internal/ui/render"
)

// Height is the status line plus the progress bar.
const Height = ui.StatusBarHeight

// State holds everything needed to render the player bar.
type State struct {
	Playing     bool
	Mode        slideshow.Mode
	Name        string // current photo name, empty when nothing is loaded
	Index       int
	Total       int
	DurationSec int
	SpeedMS     int
	Fraction    float64 // elapsed part of the advance cycle
}

// NewState snapshots the engine. fraction is passed separately because the
// app samples it on its own tick.
func NewState(e *slideshow.Engine, fraction float64) State {
	s := State{
		Playing:     e.IsPlaying(),
		Mode:        e.Mode(),
		Index:       e.CurrentIndex(),
		Total:       e.Len(),
		DurationSec: e.Duration(),
		Fraction:    fraction,
	}
	if p, ok := e.Current(); ok {
		s.Name = p.Name
	}
	return s
}

// Render returns the two player bar lines for the given width.
func Render(s State, width int) string {
	if width <= 0 {
		return ""
	}
	line := renderStatus(s, width)

	bar := ""
	if s.Mode != slideshow.ModeManual {
		bar = RenderProgressBar(s.Fraction, width)
	}
	return line + "\n" + bar
}

// Format: ▶ Auto-Play   ocean.jpg   3/8   5s · 600ms
func renderStatus(s State, width int) string {
	status := statusStyle(s.Playing).Render(icons.PlayState(s.Playing) + " " + s.Mode.Label())

	var meta []string
	if s.Total > 0 {
		meta = append(meta, headerbar.Counter(s.Index, s.Total))
	}
	meta = append(meta, fmt.Sprintf("%ds", s.DurationSec))
	if s.SpeedMS > 0 {
		meta = append(meta, fmt.Sprintf("%dms", s.SpeedMS))
	}
	right := metaStyle().Render(strings.Join(meta, " · "))

	name := s.Name
	if name == "" {
		name = "No photos"
	}
	const separator = "   "
	avail := width - lipgloss.Width(status) - lipgloss.Width(right) - 2*len(separator)
	if avail < 4 {
		return render.Row(status, right, width)
	}
	left := status + separator + nameStyle().Render(render.Truncate(name, avail))
	return render.Row(left, right, width)
}
