// Package palette implements the searchable command palette.
//
// Commands are data: each carries an Effect that a Dispatcher interprets.
// The registry keeps the catalog, the filter query and the selection, and
// notifies listeners with a View after every change.
package palette

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Kind names an effect understood by the Dispatcher.
type Kind string

const (
	SetMode       Kind = "set-mode"
	Play          Kind = "play"
	Pause         Kind = "pause"
	TogglePlay    Kind = "toggle-play"
	ApplyTheme    Kind = "apply-theme"
	NextTheme     Kind = "next-theme"
	PreviousTheme Kind = "previous-theme"
	Shuffle       Kind = "shuffle"
	LoadSamples   Kind = "load-samples"
	ToggleDark    Kind = "toggle-dark"
	OpenSettings  Kind = "open-settings"
	NextSlide     Kind = "next-slide"
	PreviousSlide Kind = "previous-slide"
	ClearPhotos   Kind = "clear-photos"
)

var kinds = map[Kind]struct{}{
	SetMode: {}, Play: {}, Pause: {}, TogglePlay: {}, ApplyTheme: {},
	NextTheme: {}, PreviousTheme: {}, Shuffle: {}, LoadSamples: {},
	ToggleDark: {}, OpenSettings: {}, NextSlide: {}, PreviousSlide: {},
	ClearPhotos: {},
}

// Known reports whether k is a recognized effect kind.
func (k Kind) Known() bool {
	_, ok := kinds[k]
	return ok
}

// Effect describes what a command does. Arg carries the parameter of
// set-mode and apply-theme.
type Effect struct {
	Kind Kind `validate:"required,effect_kind"`
	Arg  string
}

// Command is a palette entry.
type Command struct {
	ID       string `validate:"required,command_id"`
	Label    string `validate:"required"`
	Category string `validate:"required"`
	Icon     string
	Shortcut string
	Effect   Effect
}

// Dispatcher interprets effects.
type Dispatcher interface {
	Dispatch(Effect)
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(Effect)

func (f DispatchFunc) Dispatch(e Effect) { f(e) }

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	commandIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("command_id", func(fl validator.FieldLevel) bool {
			return commandIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("effect_kind", func(fl validator.FieldLevel) bool {
			return Kind(fl.Field().String()).Known()
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks that c has an id, label, category and a known effect.
func (c Command) Validate() error {
	return validatorInstance().Struct(c)
}
