package settings

import (
	"github.com/llehouerou/slides/internal/ui/action"
)

// Changed carries the edited values after every adjustment. The app applies
// them right away.
type Changed struct {
	Field  Field
	Values Values
}

// ActionType implements action.Action.
func (a Changed) ActionType() string { return "settings.changed" }

// Close signals the settings popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "settings.close" }

// ActionMsg creates an action.Msg for a settings action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "settings", Action: a}
}
