package app

import (
	"strings"

	"github.com/llehouerou/slides/internal/logger"
	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/theme"
	"github.com/llehouerou/slides/internal/ui/toast"
)

// Verify Interpreter implements palette.Dispatcher at compile time.
var _ palette.Dispatcher = (*Interpreter)(nil)

// Interpreter turns palette effects into engine calls. Effects that need
// the screen (samples, settings, clearing) are queued as requests for the
// app to pick up after the current message.
type Interpreter struct {
	slides *slideshow.Engine
	themes *theme.Engine
	toasts *toast.Stack
	log    *logger.Logger

	requests []palette.Kind
}

// NewInterpreter creates an interpreter over the engines.
func NewInterpreter(slides *slideshow.Engine, themes *theme.Engine, toasts *toast.Stack, log *logger.Logger) *Interpreter {
	return &Interpreter{
		slides: slides,
		themes: themes,
		toasts: toasts,
		log:    log.With("component", "interpreter"),
	}
}

// Dispatch implements palette.Dispatcher.
func (in *Interpreter) Dispatch(e palette.Effect) {
	in.log.Debug("dispatch", "kind", string(e.Kind), "arg", e.Arg)

	switch e.Kind {
	case palette.SetMode:
		mode := slideshow.Mode(e.Arg)
		if !in.slides.SetMode(mode) {
			return
		}
		if mode != slideshow.ModeManual {
			in.slides.Play()
		}
		in.toasts.Success("Switched to " + mode.Label() + " Mode")
	case palette.Play:
		in.slides.Play()
		in.toasts.Success("Slideshow Playing")
	case palette.Pause:
		in.slides.Pause()
		in.toasts.Success("Slideshow Paused")
	case palette.TogglePlay:
		in.slides.TogglePlayPause()
	case palette.ApplyTheme:
		in.announceTheme(in.themes.Apply(theme.ID(e.Arg)))
	case palette.NextTheme:
		in.announceTheme(in.themes.Next())
	case palette.PreviousTheme:
		in.announceTheme(in.themes.Previous())
	case palette.Shuffle:
		if in.slides.Len() == 0 {
			return
		}
		in.slides.Shuffle()
		in.toasts.Success("Photos shuffled")
	case palette.ToggleDark:
		if in.themes.ToggleDarkMode() {
			in.toasts.Success("Dark Mode Enabled")
		} else {
			in.toasts.Success("Light Mode Enabled")
		}
	case palette.NextSlide:
		in.slides.Next()
	case palette.PreviousSlide:
		in.slides.Previous()
	case palette.LoadSamples, palette.OpenSettings, palette.ClearPhotos:
		in.requests = append(in.requests, e.Kind)
	default:
		in.log.Warn("unknown effect", "kind", string(e.Kind))
	}
}

// TakeRequests returns and forgets the queued screen requests.
func (in *Interpreter) TakeRequests() []palette.Kind {
	r := in.requests
	in.requests = nil
	return r
}

// announceTheme shows "Theme B Applied" for "Theme B - Horizontal".
func (in *Interpreter) announceTheme(id theme.ID) {
	info, ok := theme.Lookup(id)
	if !ok {
		return
	}
	short, _, _ := strings.Cut(info.Name, " - ")
	in.toasts.Success(short + " Applied")
}
