// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slides/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// State holds what the header shows.
type State struct {
	Theme string // theme display name
	Mode  string // mode label
	Dark  bool
	Index int // zero-based current photo, -1 when none
	Total int
}

// segment is a key hint followed by the value it changes.
type segment struct {
	key  string
	name string
}

const title = "slides"

// Render returns the header bar string for the given width.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}

	t := styles.T()
	keyStyle := t.S().Key.Bold(true)
	nameStyle := t.S().Base
	separator := t.S().Subtle.Render(" │ ")

	look := "Light"
	if s.Dark {
		look = "Dark"
	}
	segments := []segment{
		{"t", s.Theme},
		{"m", s.Mode},
		{"D", look},
	}

	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, t.Gradient(title, true))
	for _, seg := range segments {
		if seg.name == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(seg.key)+" "+nameStyle.Render(seg.name))
	}
	parts = append(parts, t.S().Muted.Render(Counter(s.Index, s.Total)))

	content := strings.Join(parts, separator)

	// Drop segments from the right until it fits
	for lipgloss.Width(content) > width && len(parts) > 1 {
		parts = parts[:len(parts)-1]
		content = strings.Join(parts, separator)
	}

	// Center the content
	contentWidth := lipgloss.Width(content)
	if contentWidth < width {
		padLeft := (width - contentWidth) / 2
		content = strings.Repeat(" ", padLeft) + content
	}

	return content
}

// Counter formats the one-based position, "3/8", or "0/0" when empty.
func Counter(index, total int) string {
	if total == 0 || index < 0 {
		return fmt.Sprintf("0/%d", total)
	}
	return fmt.Sprintf("%d/%d", index+1, total)
}
