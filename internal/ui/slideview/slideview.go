// Package slideview draws the slide panel: the photo (as terminal graphics
// or as a text placard) and its caption, animated by transition phase.
package slideview

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/theme"
	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/photoview"
	"github.com/llehouerou/slides/internal/ui/render"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// CaptionHeight is the number of caption lines under the photo.
const CaptionHeight = 2

// WordDelay is the gap between words of a staggered caption.
const WordDelay = 90 * time.Millisecond

// Model is the slide panel.
type Model struct {
	ui.Base
	now func() time.Time

	motion theme.Motion

	phase      slideshow.Phase
	direction  slideshow.Direction
	phaseStart time.Time
	phaseDur   time.Duration

	photo    slideshow.Photo
	hasPhoto bool

	caption      string
	words        []string
	captionAt    time.Time
	captionShown bool
	captionsOn   bool

	image     string // blank placeholder while the photo is in terminal memory
	emptyHint string
}

// New returns an empty slide panel with captions enabled.
func New() Model {
	return Model{now: time.Now, captionsOn: true}
}

// SetClock replaces the time source used for animation frames.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// SetMotion sets how slides move, from the active theme.
func (m *Model) SetMotion(motion theme.Motion) {
	m.motion = motion
}

// SetEmptyHint sets the second line shown when nothing is loaded.
func (m *Model) SetEmptyHint(hint string) {
	m.emptyHint = hint
}

// SetImage sets the placeholder drawn where the terminal image goes. An
// empty placeholder draws the text placard instead.
func (m *Model) SetImage(placeholder string) {
	m.image = placeholder
}

// ToggleCaptions shows or hides captions and returns the new state.
func (m *Model) ToggleCaptions() bool {
	m.captionsOn = !m.captionsOn
	return m.captionsOn
}

// CaptionsOn reports whether captions are drawn.
func (m Model) CaptionsOn() bool {
	return m.captionsOn
}

// Photo returns the photo on screen.
func (m Model) Photo() (slideshow.Photo, bool) {
	return m.photo, m.hasPhoto
}

// Caption returns the revealed caption text, empty while hidden.
func (m Model) Caption() string {
	if !m.captionShown {
		return ""
	}
	return m.caption
}

// Phase returns the transition phase being drawn.
func (m Model) Phase() slideshow.Phase {
	return m.phase
}

// HandleEvent follows the playback engine.
func (m *Model) HandleEvent(ev slideshow.Event) {
	switch ev := ev.(type) {
	case slideshow.Loaded:
		if len(ev.Photos) == 0 {
			m.hasPhoto = false
			m.photo = slideshow.Photo{}
			m.phase = slideshow.PhaseIdle
			m.hideCaption()
		}
	case slideshow.PhaseChanged:
		m.phase = ev.Phase
		m.direction = ev.Direction
		m.phaseStart = m.now()
		m.phaseDur = ev.Duration
		m.photo, m.hasPhoto = ev.Photo, ev.HasPhoto
		if ev.Phase == slideshow.PhaseExiting {
			m.hideCaption()
		}
	case slideshow.CaptionShown:
		m.caption = ev.Text
		m.words = ev.Words
		m.captionAt = m.now()
		m.captionShown = true
	}
}

func (m *Model) hideCaption() {
	m.captionShown = false
	m.caption = ""
	m.words = nil
}

// Animating reports whether the next frames differ, so the caller keeps
// ticking.
func (m Model) Animating() bool {
	if m.phase != slideshow.PhaseIdle && m.phaseFraction() < 1 {
		return true
	}
	return m.captionShown && m.revealedWords() < len(m.words)
}

// ImageVisible reports whether the caller should place the terminal image.
func (m Model) ImageVisible() bool {
	return m.hasPhoto && m.image != ""
}

func (m Model) phaseFraction() float64 {
	if m.phaseDur <= 0 {
		return 1
	}
	f := float64(m.now().Sub(m.phaseStart)) / float64(m.phaseDur)
	return min(max(f, 0), 1)
}

func (m Model) revealedWords() int {
	if len(m.words) == 0 {
		return 0
	}
	n := int(m.now().Sub(m.captionAt)/WordDelay) + 1
	return min(max(n, 1), len(m.words))
}

// Inner returns the image and caption heights for a panel of the given
// height. It matches layout.Compute.
func Inner(height int) (imageH, captionH int) {
	innerH := max(height-ui.BorderHeight, 0)
	captionH = min(CaptionHeight, innerH)
	imageH = innerH - captionH
	if captionH > 0 && imageH > 0 {
		imageH--
	}
	return imageH, captionH
}

// View renders the bordered slide panel.
func (m Model) View() string {
	w, h := m.Size()
	if w < 6 || h < 3 {
		return ""
	}
	innerW := w - 4
	imageH, captionH := Inner(h)

	lines := m.imageLines(innerW, imageH)
	if captionH > 0 && imageH > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, m.captionLines(innerW, captionH)...)

	return styles.T().Panel(m.IsFocused()).
		Padding(0, 1).
		Width(w - 2).
		Height(h - 2).
		Render(strings.Join(lines, "\n"))
}

func (m Model) imageLines(width, height int) []string {
	if height <= 0 {
		return nil
	}
	if !m.hasPhoto {
		return fill(m.emptyLines(width, height), width, height)
	}
	if m.image != "" {
		return fill(strings.Split(m.image, "\n"), width, height)
	}

	lines := fill(strings.Split(m.placard(width, height), "\n"), width, height)
	return m.animate(lines, width, height)
}

func (m Model) emptyLines(width, height int) []string {
	s := styles.T().S()
	block := s.Muted.Render("No photos loaded")
	if m.emptyHint != "" {
		block += "\n" + s.Subtle.Render(render.Truncate(m.emptyHint, width))
	}
	return strings.Split(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block), "\n")
}

// placard stands in for the photo when the terminal cannot draw images.
func (m Model) placard(width, height int) string {
	t := styles.T()
	boxW := min(width, max(24, width*2/3))
	boxH := min(height, max(5, height*2/3))

	name := render.Truncate(icons.FormatPhoto(m.photo.Name), boxW-4)
	body := []string{t.Gradient(name, true)}
	if src := m.photo.Source; src != "" && src != m.photo.Name {
		kind := "file"
		if photoview.IsRemote(src) {
			kind = "web"
		}
		body = append(body, t.S().Subtle.Render(render.Truncate(kind+" · "+src, boxW-4)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Width(max(boxW-2, 0)).
		Height(max(boxH-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(body, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// animate moves or dims the placard according to the phase and motion.
func (m Model) animate(lines []string, width, height int) []string {
	var travel float64 // 0 at rest, 1 fully out of view
	switch m.phase {
	case slideshow.PhaseExiting:
		travel = m.phaseFraction()
	case slideshow.PhaseEntering:
		travel = 1 - m.phaseFraction()
	default:
		return lines
	}
	entering := m.phase == slideshow.PhaseEntering

	switch m.motion {
	case theme.MotionHorizontal:
		// Forward slides travel left to right
		dx := int(travel * float64(width))
		if entering {
			dx = -dx
		}
		if m.direction == slideshow.Backward {
			dx = -dx
		}
		for i, line := range lines {
			lines[i] = shiftLine(line, dx, width)
		}
		return lines
	case theme.MotionVertical:
		// Slides travel from the bottom to the top
		dy := int(travel * float64(height))
		if !entering {
			dy = -dy
		}
		return shiftLines(lines, dy, width)
	case theme.MotionFade:
		t := styles.T()
		for i, line := range lines {
			lines[i] = t.Dim(ansi.Strip(line), travel)
		}
		return lines
	default:
		return lines
	}
}

func (m Model) captionLines(width, height int) []string {
	out := make([]string, height)
	for i := range out {
		out[i] = strings.Repeat(" ", width)
	}
	if height <= 0 || !m.captionsOn || !m.captionShown || !m.hasPhoto {
		return out
	}

	text := m.caption
	if len(m.words) > 0 {
		text = strings.Join(m.words[:m.revealedWords()], " ")
	}

	t := styles.T()
	wrapped := render.Wrap(text, width)
	for i := 0; i < height && i < len(wrapped); i++ {
		line := wrapped[i]
		if i == height-1 && len(wrapped) > height {
			line = render.Truncate(line+" …", width)
		}
		if m.motion == theme.MotionFade && m.phase == slideshow.PhaseRevealing {
			line = t.Dim(line, 1-m.phaseFraction())
		} else {
			line = t.S().Caption.Render(line)
		}
		out[i] = render.Center(line, width)
	}
	return out
}

// fill pads or cuts lines to exactly height lines of width columns.
func fill(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = padRight(ansi.Truncate(line, width, ""), width)
	}
	return out
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// shiftLine moves a line dx columns right (left when negative) inside a
// window of width columns.
func shiftLine(line string, dx, width int) string {
	switch {
	case dx >= width || -dx >= width:
		return strings.Repeat(" ", width)
	case dx > 0:
		line = strings.Repeat(" ", dx) + ansi.Truncate(line, width-dx, "")
	case dx < 0:
		line = ansi.TruncateLeft(line, -dx, "")
	}
	return padRight(ansi.Truncate(line, width, ""), width)
}

// shiftLines moves the block dy lines down (up when negative).
func shiftLines(lines []string, dy, width int) []string {
	height := len(lines)
	blank := strings.Repeat(" ", width)
	out := make([]string, height)
	for i := range out {
		src := i - dy
		if src >= 0 && src < height {
			out[i] = lines[src]
		} else {
			out[i] = blank
		}
	}
	return out
}
