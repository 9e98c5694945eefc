// Package textinput provides a single-line text input popup component,
// used to edit photo captions.
package textinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/popup"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// DefaultCharLimit bounds the input length.
const DefaultCharLimit = 200

// Model is a text input popup.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
	context any // passed through to Result action
}

// New creates a new text input model.
func New() Model {
	return Model{input: newInput()}
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = DefaultCharLimit
	return ti
}

// Start initializes the input with a title and optional initial text.
func (m *Model) Start(title, initialText string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input = newInput()
	m.input.Width = max(width/2, 20)
	m.input.SetValue(initialText)
	m.input.Focus()
	m.SetSize(width, height)
}

// SetPlaceholder sets the text shown while the input is empty.
func (m *Model) SetPlaceholder(s string) {
	m.input.Placeholder = s
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Reset clears the input state.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.input = newInput()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Canceled: true, Context: ctx})
			}

		case "enter":
			text := m.input.Value()
			ctx := m.context
			return m, func() tea.Msg {
				return ActionMsg(Result{Text: text, Context: ctx})
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	t := styles.T()
	title := t.S().Active.Render(m.title)
	hint := t.S().Subtle.Render("Enter: confirm, Esc: cancel")

	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
