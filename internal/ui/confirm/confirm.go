// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/popup"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup. Destructive confirmations render
// their title in the error color.
type Model struct {
	ui.Base
	title       string
	message     string
	context     any
	destructive bool
	active      bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.destructive = false
	m.SetSize(width, height)
	m.active = true
}

// ShowDestructive is Show for actions that discard data.
func (m *Model) ShowDestructive(title, message string, context any, width, height int) {
	m.Show(title, message, context, width, height)
	m.destructive = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m, m.finish(true)
	case "esc", "n", "N":
		return m, m.finish(false)
	}
	return m, nil
}

func (m *Model) finish(confirmed bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	s := styles.T().S()
	titleStyle := s.Active
	if m.destructive {
		titleStyle = s.Error.Bold(true)
	}

	return titleStyle.Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		s.Subtle.Render("Enter/Y: confirm, Esc/N: cancel")
}
