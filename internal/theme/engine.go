// Package theme selects the active transition style and holds the
// transition timing and dark mode flag.
package theme

import (
	"time"

	"github.com/llehouerou/slides/internal/logger"
	"github.com/llehouerou/slides/internal/prefs"
)

// State is a snapshot delivered to change listeners.
type State struct {
	Theme           ID
	TransitionSpeed int // milliseconds
	DarkMode        bool
}

// Info returns the catalog entry of the active theme.
func (s State) Info() Info {
	info, _ := Lookup(s.Theme)
	return info
}

// Engine owns the theme state. It is not safe for concurrent use; all calls
// come from the UI loop.
type Engine struct {
	store     *prefs.Store
	log       *logger.Logger
	current   ID
	speed     int
	dark      bool
	maxSpeed  int
	listeners []func(State)
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxTransition caps SetTransitionSpeed. Zero leaves it unclamped.
func WithMaxTransition(ms int) Option {
	return func(e *Engine) {
		if ms > 0 {
			e.maxSpeed = ms
		}
	}
}

// New creates an Engine initialized from store. An unknown stored theme is
// replaced by the default without writing it back.
func New(store *prefs.Store, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		log:   log.With("component", "theme"),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.current = ID(store.Theme())
	if _, ok := Lookup(e.current); !ok {
		e.log.Warn("stored theme not found, using default", "theme", string(e.current))
		e.current = Default()
	}
	e.speed = e.clampSpeed(store.TransitionSpeed())
	e.dark = store.DarkMode()
	return e
}

// OnChange registers fn to receive every state change, after listeners
// registered earlier.
func (e *Engine) OnChange(fn func(State)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

// Apply activates id, falling back to the default theme when id is not in
// the catalog. Listeners are notified even when id is already active.
func (e *Engine) Apply(id ID) ID {
	if _, ok := Lookup(id); !ok {
		e.log.Warn("theme not found, defaulting", "theme", string(id), "default", string(Default()))
		id = Default()
	}
	e.current = id
	e.store.SetTheme(string(id))
	e.log.Debug("theme changed", "theme", string(id))
	e.notify()
	return id
}

// Next activates the following catalog entry, wrapping around.
func (e *Engine) Next() ID {
	i := (indexOf(e.current) + 1) % len(catalog)
	return e.Apply(catalog[i].ID)
}

// Previous activates the preceding catalog entry, wrapping around.
func (e *Engine) Previous() ID {
	i := (indexOf(e.current) - 1 + len(catalog)) % len(catalog)
	return e.Apply(catalog[i].ID)
}

func (e *Engine) Current() ID {
	return e.current
}

// Info returns the catalog entry for id.
func (e *Engine) Info(id ID) (Info, bool) {
	return Lookup(id)
}

func (e *Engine) All() []Info {
	return All()
}

// StaggerWords reports whether the active theme reveals captions word by word.
func (e *Engine) StaggerWords() bool {
	info, _ := Lookup(e.current)
	return info.StaggerWords
}

// SetTransitionSpeed stores the per-phase transition duration. Negative
// values become zero; values above a configured maximum are capped.
func (e *Engine) SetTransitionSpeed(ms int) int {
	e.speed = e.clampSpeed(ms)
	e.store.SetTransitionSpeed(e.speed)
	e.notify()
	return e.speed
}

// TransitionSpeed returns the per-phase transition duration in milliseconds.
func (e *Engine) TransitionSpeed() int {
	return e.speed
}

// TransitionDuration returns TransitionSpeed as a time.Duration.
func (e *Engine) TransitionDuration() time.Duration {
	return time.Duration(e.speed) * time.Millisecond
}

// ToggleDarkMode flips dark mode and returns the new value.
func (e *Engine) ToggleDarkMode() bool {
	e.SetDarkMode(!e.dark)
	return e.dark
}

func (e *Engine) SetDarkMode(dark bool) {
	e.dark = dark
	e.store.SetDarkMode(dark)
	e.notify()
}

func (e *Engine) DarkMode() bool {
	return e.dark
}

// State returns the current snapshot.
func (e *Engine) State() State {
	return State{Theme: e.current, TransitionSpeed: e.speed, DarkMode: e.dark}
}

func (e *Engine) clampSpeed(ms int) int {
	if ms < 0 {
		return 0
	}
	if e.maxSpeed > 0 && ms > e.maxSpeed {
		return e.maxSpeed
	}
	return ms
}

func (e *Engine) notify() {
	s := e.State()
	for _, fn := range e.listeners {
		fn(s)
	}
}
