package slideshow

import (
	"strings"
	"time"

	"github.com/llehouerou/slides/internal/loop"
)

// Phase is a step of the slide transition.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExiting
	PhaseSwapping
	PhaseEntering
	PhaseRevealing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseExiting:
		return "Exiting"
	case PhaseSwapping:
		return "Swapping"
	case PhaseEntering:
		return "Entering"
	case PhaseRevealing:
		return "Revealing"
	default:
		return "Unknown"
	}
}

// transition is the in-flight slide change. Only one exists at a time and
// at most one of its steps is scheduled.
type transition struct {
	phase     Phase
	direction Direction
	target    Photo
	index     int
	step      loop.Timer

	// shown is the photo currently on screen.
	shown    Photo
	hasShown bool
}

// beginTransition cancels any in-flight transition and starts a new one
// towards photo at index.
func (e *Engine) beginTransition(index int, photo Photo, dir Direction) {
	loop.Stop(e.trans.step)
	e.trans.step = nil
	e.trans.target = photo
	e.trans.index = index
	e.trans.direction = dir
	e.enterPhase(PhaseExiting)
}

// cancelTransition drops the in-flight transition and clears the screen.
func (e *Engine) cancelTransition() {
	loop.Stop(e.trans.step)
	e.trans = transition{}
}

func (e *Engine) enterPhase(phase Phase) {
	e.trans.phase = phase
	d := e.phaseDuration()

	if phase == PhaseSwapping {
		e.trans.shown = e.trans.target
		e.trans.hasShown = true
	}

	e.emit(PhaseChanged{
		Phase:     phase,
		Photo:     e.trans.shown,
		HasPhoto:  e.trans.hasShown,
		Direction: e.trans.direction,
		Duration:  d,
	})
	if phase == PhaseRevealing {
		e.emit(e.captionEvent(e.trans.index, e.trans.target))
	}

	var next Phase
	switch phase {
	case PhaseExiting:
		next = PhaseSwapping
	case PhaseSwapping:
		// The swap itself is instantaneous.
		e.enterPhase(PhaseEntering)
		return
	case PhaseEntering:
		next = PhaseRevealing
	case PhaseRevealing:
		next = PhaseIdle
	default:
		return
	}

	if d <= 0 {
		e.enterPhase(next)
		return
	}
	e.trans.step = e.sched.After(d, func() {
		e.trans.step = nil
		e.enterPhase(next)
	})
}

func (e *Engine) phaseDuration() time.Duration {
	if e.themes == nil {
		return 0
	}
	return e.themes.TransitionDuration()
}

func (e *Engine) captionEvent(index int, p Photo) CaptionShown {
	text := p.DisplayCaption()
	ev := CaptionShown{Index: index, Text: text}
	if e.themes != nil && e.themes.StaggerWords() {
		ev.Words = strings.Fields(text)
	}
	return ev
}
