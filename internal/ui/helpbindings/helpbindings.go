// Package helpbindings provides a scrollable popup listing the key bindings
// of the active contexts.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slides/internal/keymap"
	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/popup"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextSlideshow,
	keymap.ContextPhotoList,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:    "Global",
	keymap.ContextSlideshow: "Slideshow",
	keymap.ContextPhotoList: "Photo List",
}

// keyNames spells out keys that are invisible or cryptic on their own.
var keyNames = map[string]string{
	" ":     "space",
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	contexts     []string
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup. The popup manager adds the border.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Width comes from all lines so the popup does not resize while scrolling
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	s := styles.T().S()
	return s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(m.buildFooter())
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if name, ok := keyNames[k]; ok {
			k = name
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) buildContent() string {
	t := styles.T()
	s := t.S()
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label) + "\n")
			sb.WriteString(s.Subtle.Render(strings.Repeat("─", maxKeyWidth+15)) + "\n")
			currentContext = b.Context
		}

		key := keyLabel(b)
		sb.WriteString(s.Key.Render(key + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(key))))
		sb.WriteString("  ")
		sb.WriteString(s.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Title, footer, border and padding
	return max(m.Height()-10, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
