package app

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/app/popupctl"
	"github.com/llehouerou/slides/internal/prefs"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/theme"
	"github.com/llehouerou/slides/internal/ui/action"
	"github.com/llehouerou/slides/internal/ui/commandbar"
	"github.com/llehouerou/slides/internal/ui/confirm"
	"github.com/llehouerou/slides/internal/ui/helpbindings"
	"github.com/llehouerou/slides/internal/ui/photolist"
	"github.com/llehouerou/slides/internal/ui/settings"
	"github.com/llehouerou/slides/internal/ui/textinput"
)

// resetSettingsContext tags the confirmation asked before a reset.
type resetSettingsContext struct{}

// handleAction dispatches actions emitted by panels and popups.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.log.Debug("action", "source", msg.Source, "type", msg.Action.ActionType())

	switch a := msg.Action.(type) {
	case photolist.Show:
		m.Slides.GoTo(a.Index)
	case photolist.Reorder:
		m.Slides.UpdateOrder(a.Photos)
		if a.Reason == "remove" {
			m.Toasts.Info("Photo removed")
		}
	case photolist.Close:
		m.photoListVisible = false
		cmd := m.resizeComponents()
		m.setFocus(FocusSlide)
		return m, cmd

	case commandbar.Closed, commandbar.Executed:
		m.Popups.Hide(popupctl.Palette)

	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)

	case settings.Changed:
		m.applySettings(a)
	case settings.Close:
		m.Popups.Hide(popupctl.Settings)

	case confirm.Result:
		m.Popups.Hide(popupctl.Confirm)
		if !a.Confirmed {
			return m, nil
		}
		switch a.Context.(type) {
		case clearPhotosContext:
			m.ClearPhotos()
		case resetSettingsContext:
			m.resetSettings()
		}

	case textinput.Result:
		return m.handleCaptionResult(a)
	}
	return m, nil
}

// EditCaption opens the caption editor on the current photo.
func (m *Model) EditCaption() tea.Cmd {
	p, ok := m.Slides.Current()
	if !ok {
		m.Toasts.Error("Please select a photo first")
		return nil
	}
	return m.Popups.ShowCaption(p.Name, p.Caption)
}

func (m Model) handleCaptionResult(r textinput.Result) (tea.Model, tea.Cmd) {
	if r.Canceled {
		m.Popups.Hide(popupctl.Caption)
		return m, nil
	}
	text := strings.TrimSpace(r.Text)
	if text == "" {
		// The editor stays open for another try
		m.Toasts.Error("Please enter a caption")
		return m, nil
	}
	m.Popups.Hide(popupctl.Caption)

	name, _ := r.Context.(string)
	i := slices.IndexFunc(m.Slides.Photos(), func(p slideshow.Photo) bool { return p.Name == name })
	if i < 0 || !m.Slides.UpdateCaption(i, text) {
		m.Toasts.Error("Please select a photo first")
		return m, nil
	}
	m.Toasts.Success("Caption saved")
	return m, nil
}

// OpenSettings shows the settings panel on the live values.
func (m *Model) OpenSettings() tea.Cmd {
	return m.Popups.ShowSettings(settings.Values{
		Mode:     m.Slides.Mode(),
		Theme:    m.Themes.Current(),
		Duration: m.Slides.Duration(),
		SpeedMS:  m.Themes.TransitionSpeed(),
		Dark:     m.Themes.DarkMode(),
	})
}

func (m *Model) applySettings(c settings.Changed) {
	v := c.Values
	switch c.Field {
	case settings.FieldMode:
		m.Slides.SetMode(v.Mode)
	case settings.FieldTheme:
		m.Themes.Apply(v.Theme)
	case settings.FieldDuration:
		m.Slides.SetDuration(v.Duration)
	case settings.FieldSpeed:
		m.Themes.SetTransitionSpeed(v.SpeedMS)
	case settings.FieldDark:
		m.Themes.SetDarkMode(v.Dark)
	}
}

// ResetSettings asks before clearing every stored preference.
func (m *Model) ResetSettings() tea.Cmd {
	return m.Popups.ShowConfirm("Reset Preferences",
		"Restore default mode, theme, timing and captions?", resetSettingsContext{})
}

// resetSettings clears the store and puts the engines back on the
// defaults. Custom captions are dropped; the loaded photos stay and are
// saved again.
func (m *Model) resetSettings() {
	m.store.ClearAll()
	m.Slides.ClearCaptions()
	m.Slides.SetMode(slideshow.Mode(prefs.DefaultMode))
	m.Slides.SetDuration(prefs.DefaultDuration)
	m.Themes.Apply(theme.ID(prefs.DefaultTheme))
	m.Themes.SetTransitionSpeed(prefs.DefaultTransitionSpeed)
	m.Themes.SetDarkMode(prefs.DefaultDarkMode)
	m.SavePhotos()
	m.Toasts.Success("Preferences reset")
}
