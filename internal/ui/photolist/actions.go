package photolist

import (
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/ui/action"
)

// Show requests the photo at Index.
type Show struct {
	Index int
}

// ActionType implements action.Action.
func (a Show) ActionType() string { return "photolist.show" }

// Reorder carries a new sequence for the engine. It covers moves, removals
// and undo/redo.
type Reorder struct {
	Photos []slideshow.Photo
	Reason string // "move", "remove", "undo", "redo"
}

// ActionType implements action.Action.
func (a Reorder) ActionType() string { return "photolist.reorder" }

// Close asks the app to hide the panel.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "photolist.close" }

// ActionMsg creates an action.Msg for a photolist action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "photolist", Action: a}
}
