package photolist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/ui/render"
	"github.com/llehouerou/slides/internal/ui/styles"
)

const playingSymbol = "▶"

// View renders the photo list panel.
func (m Model) View() string {
	w, h := m.Size()
	if w < 8 || h < 5 {
		return ""
	}

	innerWidth := w - 2
	t := styles.T()

	lines := []string{m.renderHeader(innerWidth), t.S().Subtle.Render(render.Separator(innerWidth))}
	lines = append(lines, m.renderList(innerWidth, m.listHeight())...)

	return t.Panel(m.IsFocused()).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderHeader(width int) string {
	s := styles.T().S()
	left := fmt.Sprintf("Photos (%d/%d)", m.current+1, len(m.photos))
	if m.current < 0 {
		left = fmt.Sprintf("Photos (0/%d)", len(m.photos))
	}

	var hint string
	switch {
	case m.CanUndo() && m.CanRedo():
		hint = "undo·redo"
	case m.CanUndo():
		hint = "undo"
	case m.CanRedo():
		hint = "redo"
	}
	if hint == "" {
		return s.Title.Render(render.Fit(left, width))
	}
	return render.Row(s.Title.Render(render.Truncate(left, width-len(hint)-1)), s.Subtle.Render(hint), width)
}

func (m Model) renderList(width, height int) []string {
	lines := make([]string, 0, height)
	start, end := m.cursor.Window()
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderLine(idx, width))
	}
	if len(m.photos) == 0 && height > 0 {
		lines = append(lines, styles.T().S().Muted.Render(render.Fit("No photos", width)))
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}

// renderLine draws "▶ name        3": marker, name, then the position.
func (m Model) renderLine(idx, width int) string {
	photo := m.photos[idx]

	prefix := "  "
	if idx == m.current {
		prefix = playingSymbol + " "
	}
	number := strconv.Itoa(idx + 1)
	numberWidth := max(len(strconv.Itoa(len(m.photos))), 1) + 1

	name := icons.FormatPhoto(photo.Name)
	line := prefix + render.Fit(name, max(width-2-numberWidth, 0)) +
		strings.Repeat(" ", numberWidth-len(number)) + number

	s := styles.T().S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	switch {
	case isCursor && idx == m.current:
		return s.Cursor.Inherit(s.Active).Render(line)
	case isCursor:
		return s.Cursor.Render(line)
	case idx == m.current:
		return s.Active.Render(line)
	default:
		return s.Base.Render(line)
	}
}
