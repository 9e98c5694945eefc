// Package action defines the interface for UI component actions.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// The ActionType method returns a string identifier for logging/debugging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name. Components never
// touch the engines; the app turns their actions into engine calls.
type Msg struct {
	Source string // "photolist", "commandbar", "settings", ...
	Action Action
}

var _ tea.Msg = Msg{}
