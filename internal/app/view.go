package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slides/internal/app/popupctl"
	"github.com/llehouerou/slides/internal/ui/headerbar"
	"github.com/llehouerou/slides/internal/ui/layout"
	"github.com/llehouerou/slides/internal/ui/playerbar"
	"github.com/llehouerou/slides/internal/ui/popup"
)

// toastWidth is the widest a toast box grows.
const toastWidth = 44

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	l := m.layout()

	view := m.renderHeader() + "\n" + m.renderBody(l) + "\n" + m.renderPlayerBar()
	view = m.overlayToasts(view, l)
	view = m.Popups.RenderOverlay(view)
	view = enforceHeight(view, m.Height)

	// Transmission first, then the photo is placed over its placeholder.
	// A popup hides the photo since images draw above text.
	if m.pendingTransmit != "" {
		view = m.pendingTransmit + view
	}
	if m.Popups.ActivePopup() == popupctl.None {
		view += m.imagePlacement()
	}
	return view
}

func (m Model) renderHeader() string {
	s := m.Themes.State()
	return headerbar.Render(headerbar.State{
		Theme: s.Info().Name,
		Mode:  m.Slides.Mode().Label(),
		Dark:  s.DarkMode,
		Index: m.Slides.CurrentIndex(),
		Total: m.Slides.Len(),
	}, m.Width)
}

func (m Model) renderBody(l layout.Layout) string {
	slide := m.Slide.View()
	if !l.PhotoListShown() {
		return slide
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, slide, m.PhotoList.View())
}

func (m Model) renderPlayerBar() string {
	state := playerbar.NewState(m.Slides, m.Slides.Progress().Fraction)
	state.SpeedMS = m.Themes.TransitionSpeed()
	return playerbar.Render(state, m.Width)
}

// overlayToasts draws the toast stack in the bottom-right corner of the
// slide panel.
func (m Model) overlayToasts(view string, l layout.Layout) string {
	if m.Toasts.Len() == 0 || l.Slide.Empty() {
		return view
	}
	width := min(toastWidth, l.Slide.W-4)
	box := m.Toasts.View(width)
	if box == "" {
		return view
	}

	lines := strings.Split(box, "\n")
	top := max(l.Slide.Y+l.Slide.H-1-len(lines), l.Slide.Y+1)
	left := max(l.Slide.X+l.Slide.W-2-lipgloss.Width(lines[0]), l.Slide.X+1)

	overlay := make([]string, 0, top+len(lines))
	for range top {
		overlay = append(overlay, "")
	}
	pad := strings.Repeat(" ", left)
	for _, line := range lines {
		overlay = append(overlay, pad+line)
	}
	return popup.Compose(view, strings.Join(overlay, "\n"), m.Width, m.Height)
}

// enforceHeight pads or truncates view to exactly height lines.
func enforceHeight(view string, height int) string {
	lines := strings.Split(view, "\n")
	switch {
	case len(lines) < height:
		lines = append(lines, make([]string, height-len(lines))...)
	case len(lines) > height:
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
