package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/slides/internal/ui/styles"
)

// Dialog is a simple centered box with title, content, and footer. It is
// used for popups that have no state of their own, such as error messages.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = auto-fit content
}

// Render returns the dialog centered in a termWidth x termHeight area.
func (d *Dialog) Render(termWidth, termHeight int) string {
	t := styles.T()

	innerWidth := d.Width
	if innerWidth == 0 {
		innerWidth = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer)) + 2
	}
	innerWidth = min(innerWidth, termWidth-4)

	lines := make([]string, 0, strings.Count(d.Content, "\n")+5)
	if d.Title != "" {
		lines = append(lines, centerLine(t.S().Title.Render(d.Title), innerWidth), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		if lipgloss.Width(line) > innerWidth {
			line = ansi.Truncate(line, innerWidth, "...")
		}
		lines = append(lines, padLine(line, innerWidth))
	}
	if d.Footer != "" {
		lines = append(lines, "", centerLine(t.S().Subtle.Render(d.Footer), innerWidth))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(innerWidth + 2). // lipgloss width includes padding
		Render(strings.Join(lines, "\n"))

	return Center(box, termWidth, termHeight)
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func padLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Center centers pre-rendered content in the terminal.
func Center(box string, termWidth, termHeight int) string {
	lines := strings.Split(box, "\n")
	boxWidth := 0
	for _, line := range lines {
		boxWidth = max(boxWidth, lipgloss.Width(line))
	}

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeAuto    = SizeConfig{}             // help, confirm, caption
	SizePalette = SizeConfig{MaxWidth: 72} // command palette
	SizeForm    = SizeConfig{MaxWidth: 60} // settings
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4 // padding + border
	height = min(height, screenH-4)
	return width, height
}

// Compose overlays popupView on top of base. Non-blank columns of each
// overlay line replace the base at the same position; the rest of the base
// line stays visible. ANSI sequences on both sides are preserved.
func Compose(base, popupView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := len(plainOverlay) - len(strings.TrimLeft(plainOverlay, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))
		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// A wide character cut in half leaves the prefix or suffix short
		prefix := ansi.Cut(baseLine, 0, startCol)
		if pw := ansi.StringWidth(prefix); pw < startCol {
			prefix += strings.Repeat(" ", startCol-pw)
		}

		result := prefix + overlayContent
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			want := width - endCol
			switch sw := ansi.StringWidth(suffix); {
			case sw > want:
				suffix = " " + ansi.Cut(suffix, sw-want+1, sw)
			case sw < want:
				suffix += strings.Repeat(" ", want-sw)
			}
			result += suffix
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}
