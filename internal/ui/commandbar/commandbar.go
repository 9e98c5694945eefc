// Package commandbar is the command palette popup. Filtering, selection and
// execution live in palette.Registry; this package feeds it keystrokes and
// draws its View.
package commandbar

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const maxVisibleCommands = 12

// Model is the palette popup.
type Model struct {
	ui.Base
	reg    *palette.Registry
	input  textinput.Model
	offset int
}

// New creates a palette popup over reg.
func New(reg *palette.Registry) Model {
	return Model{reg: reg, input: newInput()}
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a command..."
	ti.CharLimit = 64
	return ti
}

// Open shows the palette with an empty query.
func (m *Model) Open(width, height int) {
	m.reg.Open()
	m.input = newInput()
	m.input.Width = max(width/2, 20)
	m.input.Focus()
	m.offset = 0
	m.SetSize(width, height)
}

// IsOpen reports whether the registry is open.
func (m Model) IsOpen() bool {
	return m.reg.IsOpen()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.reg.IsOpen() {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "ctrl+k":
		m.reg.Close()
		return m, func() tea.Msg { return ActionMsg(Closed{}) }

	case "enter":
		cmd, ok := m.reg.Selected()
		if !ok || !m.reg.ExecuteSelected() {
			return m, nil
		}
		return m, func() tea.Msg { return ActionMsg(Executed{ID: cmd.ID}) }

	case "up", "ctrl+p", "shift+tab":
		m.reg.SelectPrevious()
		m.adjustOffset()
		return m, nil

	case "down", "ctrl+n", "tab":
		m.reg.SelectNext()
		m.adjustOffset()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.reg.Filter(m.input.Value())
		m.offset = 0
	}
	return m, cmd
}

func (m *Model) adjustOffset() {
	visible := m.visibleHeight()
	selected := m.reg.View().Selected
	if selected < m.offset {
		m.offset = selected
	}
	if selected >= m.offset+visible {
		m.offset = selected - visible + 1
	}
}

func (m Model) visibleHeight() int {
	// Input line and separator, plus the popup frame
	h := m.Height()*60/100 - 2 - 6
	return min(max(h, 3), maxVisibleCommands)
}
