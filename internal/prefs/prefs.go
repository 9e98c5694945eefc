// Package prefs persists user preferences and per-photo captions.
//
// Values are JSON-encoded and stored under a flat namespace of keys. Reads
// never fail: a missing key, a backend error or a malformed value yields the
// caller's default. Writes report success as a bool.
package prefs

import (
	"encoding/json"

	"github.com/llehouerou/slides/internal/logger"
)

// Storage keys.
const (
	KeyMode            = "slideshow_mode"
	KeyTheme           = "slideshow_theme"
	KeyDuration        = "slideshow_duration"
	KeyTransitionSpeed = "slideshow_transition_speed"
	KeyDarkMode        = "slideshow_dark_mode"
	KeyPhotos          = "slideshow_photos"
	KeyCaptions        = "slideshow_captions"
)

// Defaults.
const (
	DefaultMode            = "manual"
	DefaultTheme           = "theme-a"
	DefaultDuration        = 5
	DefaultTransitionSpeed = 500
	DefaultDarkMode        = false
)

// Keys lists every key owned by the store, in declaration order.
var Keys = []string{
	KeyMode,
	KeyTheme,
	KeyDuration,
	KeyTransitionSpeed,
	KeyDarkMode,
	KeyPhotos,
	KeyCaptions,
}

// Backend is the raw string key-value storage behind a Store.
// state.Manager implements it.
type Backend interface {
	GetSetting(key string) (string, bool, error)
	SaveSetting(key, value string) error
	DeleteSetting(key string) error
	DeleteSettings(keys ...string) error
}

// Store reads and writes typed preferences.
type Store struct {
	backend Backend
	log     *logger.Logger
}

// New creates a Store over backend. log may be nil.
func New(backend Backend, log *logger.Logger) *Store {
	return &Store{backend: backend, log: log.With("component", "prefs")}
}

// Get returns the value stored under key decoded as T, or def when the key
// is absent, unreadable or holds data that does not decode as T.
func Get[T any](s *Store, key string, def T) T {
	raw, ok, err := s.backend.GetSetting(key)
	if err != nil {
		s.log.Warn("read preference failed", "key", key, "error", err.Error())
		return def
	}
	if !ok {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn("malformed preference", "key", key, "error", err.Error())
		return def
	}
	return v
}

// Set stores value under key. It returns false when encoding or the
// backend write fails.
func (s *Store) Set(key string, value any) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("encode preference failed", "key", key, "error", err.Error())
		return false
	}
	if err := s.backend.SaveSetting(key, string(data)); err != nil {
		s.log.Warn("write preference failed", "key", key, "error", err.Error())
		return false
	}
	return true
}

// Remove deletes key. Failures are logged.
func (s *Store) Remove(key string) {
	if err := s.backend.DeleteSetting(key); err != nil {
		s.log.Warn("remove preference failed", "key", key, "error", err.Error())
	}
}

// ClearAll deletes every key owned by the store.
func (s *Store) ClearAll() {
	if err := s.backend.DeleteSettings(Keys...); err != nil {
		s.log.Warn("clear preferences failed", "error", err.Error())
	}
}

func (s *Store) Mode() string { return Get(s, KeyMode, DefaultMode) }
func (s *Store) SetMode(mode string) bool { return s.Set(KeyMode, mode) }

func (s *Store) Theme() string { return Get(s, KeyTheme, DefaultTheme) }
func (s *Store) SetTheme(id string) bool { return s.Set(KeyTheme, id) }

// Duration returns the slide duration in seconds.
func (s *Store) Duration() int { return Get(s, KeyDuration, DefaultDuration) }
func (s *Store) SetDuration(seconds int) bool { return s.Set(KeyDuration, seconds) }

// TransitionSpeed returns the transition phase duration in milliseconds.
func (s *Store) TransitionSpeed() int { return Get(s, KeyTransitionSpeed, DefaultTransitionSpeed) }
func (s *Store) SetTransitionSpeed(ms int) bool { return s.Set(KeyTransitionSpeed, ms) }

func (s *Store) DarkMode() bool { return Get(s, KeyDarkMode, DefaultDarkMode) }
func (s *Store) SetDarkMode(dark bool) bool { return s.Set(KeyDarkMode, dark) }
