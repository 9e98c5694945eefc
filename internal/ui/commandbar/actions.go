package commandbar

import (
	"github.com/llehouerou/slides/internal/ui/action"
)

// Closed reports that the palette was dismissed without running anything.
type Closed struct{}

// ActionType implements action.Action.
func (a Closed) ActionType() string { return "commandbar.closed" }

// Executed reports that a command was scheduled. Its effect runs once the
// registry's execute delay elapses.
type Executed struct {
	ID string
}

// ActionType implements action.Action.
func (a Executed) ActionType() string { return "commandbar.executed" }

// ActionMsg creates an action.Msg for a commandbar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "commandbar", Action: a}
}
