// Package slideshow implements the photo playback state machine: the
// ordered photo sequence, the current position, the advance timer and the
// per-slide transition phases.
//
// The engine never draws anything. It emits Events that a renderer
// consumes, and it defers all work through a loop.Scheduler so it runs
// entirely on the caller's goroutine.
package slideshow

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/llehouerou/slides/internal/logger"
	"github.com/llehouerou/slides/internal/loop"
	"github.com/llehouerou/slides/internal/prefs"
)

// Duration bounds in seconds.
const (
	MinDuration = 1
	MaxDuration = 30
)

// Themer supplies transition timing and caption presentation.
// theme.Engine implements it.
type Themer interface {
	TransitionDuration() time.Duration
	StaggerWords() bool
}

// Rand is the random source used for random selection and shuffling.
type Rand interface {
	IntN(n int) int
}

type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

// Engine owns the playback state. It is not safe for concurrent use.
type Engine struct {
	sched  loop.Scheduler
	store  *prefs.Store
	themes Themer
	log    *logger.Logger
	rng    Rand

	photos   []Photo
	index    int
	mode     Mode
	playing  bool
	duration int

	advance   loop.Timer
	progress  progress
	trans     transition
	listeners []func(Event)
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) { e.log = l.With("component", "slideshow") }
}

// WithRand replaces the random source.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// New creates an Engine with mode and duration restored from store.
func New(sched loop.Scheduler, store *prefs.Store, themes Themer, opts ...Option) *Engine {
	e := &Engine{
		sched:  sched,
		store:  store,
		themes: themes,
		rng:    defaultRand{},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.mode = Mode(store.Mode())
	if !e.mode.Valid() {
		e.log.Warn("stored mode invalid, using manual", "mode", string(e.mode))
		e.mode = ModeManual
	}
	e.duration = clampDuration(store.Duration())
	return e
}

// OnEvent registers fn. Listeners run synchronously in registration order.
func (e *Engine) OnEvent(fn func(Event)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}

// Photos returns a copy of the sequence.
func (e *Engine) Photos() []Photo {
	return slices.Clone(e.photos)
}

func (e *Engine) Len() int {
	return len(e.photos)
}

// Current returns the photo at the current index.
func (e *Engine) Current() (Photo, bool) {
	if len(e.photos) == 0 {
		return Photo{}, false
	}
	return e.photos[e.index], true
}

// CurrentIndex returns the current index. It is meaningless when empty.
func (e *Engine) CurrentIndex() int {
	return e.index
}

func (e *Engine) Mode() Mode {
	return e.mode
}

func (e *Engine) IsPlaying() bool {
	return e.playing
}

// Duration returns the slide duration in seconds.
func (e *Engine) Duration() int {
	return e.duration
}

// Progress returns the elapsed fraction of the current advance cycle.
func (e *Engine) Progress() Progress {
	return Progress{
		Fraction: e.progress.fraction(e.sched.Now()),
		Running:  e.progress.running,
	}
}

// Phase returns the transition phase.
func (e *Engine) Phase() Phase {
	return e.trans.phase
}

// Shown returns the photo currently on screen, which lags Current while a
// transition is exiting.
func (e *Engine) Shown() (Photo, bool) {
	return e.trans.shown, e.trans.hasShown
}

// State returns the coarse engine state.
func (e *Engine) State() State {
	if len(e.photos) == 0 {
		return StateIdle
	}
	switch e.mode {
	case ModeAuto:
		return StateAuto
	case ModeRandom:
		return StateRandom
	default:
		return StateManual
	}
}

func clampDuration(s int) int {
	return max(MinDuration, min(MaxDuration, s))
}
