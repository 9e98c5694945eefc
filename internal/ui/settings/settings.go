// Package settings is the popup editing the slideshow preferences. Every
// adjustment is emitted at once so changes apply live.
package settings

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/theme"
	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/popup"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Field is an editable row.
type Field int

const (
	FieldMode Field = iota
	FieldTheme
	FieldDuration
	FieldSpeed
	FieldDark
	fieldCount
)

// Duration and transition speed bounds.
const (
	MinDuration = 1
	MaxDuration = 30
	SpeedStep   = 100
	MaxSpeed    = 2000
)

// Values are the settings shown in the popup.
type Values struct {
	Mode     slideshow.Mode
	Theme    theme.ID
	Duration int // seconds
	SpeedMS  int
	Dark     bool
}

// Model is the settings popup.
type Model struct {
	ui.Base
	values Values
	field  Field
}

// New creates a settings popup.
func New() Model {
	return Model{}
}

// Show opens the popup on the current values.
func (m *Model) Show(v Values, width, height int) {
	m.values = v
	m.field = FieldMode
	m.SetSize(width, height)
}

// Values returns the edited values.
func (m Model) Values() Values {
	return m.values
}

// Field returns the highlighted row.
func (m Model) Field() Field {
	return m.field
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
	case "esc", "q", ",", "enter":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down", "tab":
		m.field = (m.field + 1) % fieldCount
	case "k", "up", "shift+tab":
		m.field = (m.field - 1 + fieldCount) % fieldCount
	case "l", "right", "+", " ":
		return m, m.adjust(1)
	case "h", "left", "-":
		return m, m.adjust(-1)
	}
	return m, nil
}

// adjust steps the highlighted value and emits it when it changed.
func (m *Model) adjust(step int) tea.Cmd {
	before := m.values
	v := &m.values

	switch m.field {
	case FieldMode:
		v.Mode = cycle(slideshow.Modes, v.Mode, step)
	case FieldTheme:
		ids := make([]theme.ID, 0, len(theme.All()))
		for _, info := range theme.All() {
			ids = append(ids, info.ID)
		}
		v.Theme = cycle(ids, v.Theme, step)
	case FieldDuration:
		v.Duration = min(max(v.Duration+step, MinDuration), MaxDuration)
	case FieldSpeed:
		v.SpeedMS = min(max(v.SpeedMS+step*SpeedStep, 0), MaxSpeed)
	case FieldDark:
		v.Dark = !v.Dark
	}

	if m.values == before {
		return nil
	}
	changed := Changed{Field: m.field, Values: m.values}
	return func() tea.Msg { return ActionMsg(changed) }
}

// cycle returns the entry step positions after cur, wrapping around. An
// unknown cur starts from the first entry.
func cycle[T comparable](all []T, cur T, step int) T {
	i := slices.Index(all, cur)
	if i < 0 {
		return all[0]
	}
	n := len(all)
	return all[((i+step)%n+n)%n]
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	rows := []struct {
		label, value string
	}{
		{"Mode", m.values.Mode.Label()},
		{"Theme", themeName(m.values.Theme)},
		{"Slide duration", fmt.Sprintf("%ds", m.values.Duration)},
		{"Transition speed", speedLabel(m.values.SpeedMS)},
		{"Dark mode", onOff(m.values.Dark)},
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Settings") + "\n\n")
	for i, row := range rows {
		label := fmt.Sprintf("%-18s", row.label)
		value := "‹ " + row.value + " ›"
		if Field(i) == m.field {
			sb.WriteString(s.Active.Render("> "+label) + s.Cursor.Render(value))
		} else {
			sb.WriteString(s.Base.Render("  "+label) + s.Muted.Render(value))
		}
		sb.WriteString("\n")
	}
	if info, ok := theme.Lookup(m.values.Theme); ok {
		sb.WriteString("\n" + s.Subtle.Render(info.Description) + "\n")
	}
	sb.WriteString("\n" + s.Subtle.Render("↑/↓ select · ←/→ change · Esc close"))
	return sb.String()
}

func themeName(id theme.ID) string {
	if info, ok := theme.Lookup(id); ok {
		return info.Name
	}
	return string(id)
}

func speedLabel(ms int) string {
	if ms == 0 {
		return "instant"
	}
	return fmt.Sprintf("%dms", ms)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
