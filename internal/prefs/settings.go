package prefs

// Settings is a snapshot of the scalar preferences.
type Settings struct {
	Mode            string `json:"mode"`
	Theme           string `json:"theme"`
	Duration        int    `json:"duration"`
	TransitionSpeed int    `json:"transitionSpeed"`
	DarkMode        *bool  `json:"darkMode,omitempty"`
}

// Settings reads every scalar preference, applying defaults.
func (s *Store) Settings() Settings {
	dark := s.DarkMode()
	return Settings{
		Mode:            s.Mode(),
		Theme:           s.Theme(),
		Duration:        s.Duration(),
		TransitionSpeed: s.TransitionSpeed(),
		DarkMode:        &dark,
	}
}

// Restore writes the set fields of settings. Zero strings and numbers and a
// nil DarkMode are left untouched. It reports whether every write succeeded.
func (s *Store) Restore(settings Settings) bool {
	ok := true
	if settings.Mode != "" {
		ok = s.SetMode(settings.Mode) && ok
	}
	if settings.Theme != "" {
		ok = s.SetTheme(settings.Theme) && ok
	}
	if settings.Duration != 0 {
		ok = s.SetDuration(settings.Duration) && ok
	}
	if settings.TransitionSpeed != 0 {
		ok = s.SetTransitionSpeed(settings.TransitionSpeed) && ok
	}
	if settings.DarkMode != nil {
		ok = s.SetDarkMode(*settings.DarkMode) && ok
	}
	return ok
}

// PhotoRecord is the persisted metadata of a loaded photo. Image data is
// never stored.
type PhotoRecord struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Photos returns the photo list saved by the last session.
func (s *Store) Photos() []PhotoRecord {
	return Get[[]PhotoRecord](s, KeyPhotos, nil)
}

func (s *Store) SetPhotos(photos []PhotoRecord) bool {
	if photos == nil {
		photos = []PhotoRecord{}
	}
	return s.Set(KeyPhotos, photos)
}
