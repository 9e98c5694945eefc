package commandbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/ui/render"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// contentWidth is the width of the lines inside the bordered popup.
func (m Model) contentWidth() int {
	return max(min(m.Width()-10, 66), 20)
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.reg.IsOpen() || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	width := m.contentWidth()
	v := m.reg.View()

	lines := []string{
		s.Title.Render("Command Palette"),
		m.input.View(),
		s.Subtle.Render(render.Separator(width)),
	}

	if len(v.Commands) == 0 {
		lines = append(lines, s.Muted.Render("No matching commands"))
	}
	end := min(m.offset+m.visibleHeight(), len(v.Commands))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.formatLine(v.Commands[i], width, i == v.Selected))
	}

	lines = append(lines, "", s.Subtle.Render("↑/↓ select · Enter run · Esc close"))
	return strings.Join(lines, "\n")
}

// formatLine draws "> icon Label      Category  key".
func (m Model) formatLine(cmd palette.Command, width int, selected bool) string {
	s := styles.T().S()

	prefix := "  "
	if selected {
		prefix = "> "
	}

	right := s.Subtle.Render(cmd.Category)
	if cmd.Shortcut != "" {
		right += "  " + s.Key.Render(cmd.Shortcut)
	}

	label := render.Truncate(icons.Prefix(cmd.Icon)+cmd.Label, max(width-len(prefix)-lipgloss.Width(right)-2, 1))
	if selected {
		label = s.Active.Render(prefix + label)
	} else {
		label = s.Base.Render(prefix + label)
	}
	return render.Row(label, right, width)
}
