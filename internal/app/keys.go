// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/keymap"
	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/ui/settings"
)

var (
	globalKeys    = keymap.NewResolver(keymap.ByContext(keymap.ContextGlobal))
	slideshowKeys = keymap.NewResolver(keymap.ByContext(keymap.ContextSlideshow))
	photoListKeys = keymap.NewResolver(keymap.ByContext(keymap.ContextPhotoList))
)

// Duration and transition steps of the keyboard shortcuts.
const (
	durationStep = 1
	speedStep    = settings.SpeedStep
)

// keyHandler tries one layer of key handling.
type keyHandler func(tea.KeyMsg) (bool, tea.Cmd)

// handleKeyMsg routes a key through the layers, top-most first: popups,
// global shortcuts, the focused photo list, then the slideshow.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, h := range []keyHandler{
		m.Popups.HandleKey,
		m.handleGlobalKey,
		m.handlePhotoListKey,
		m.handleSlideshowKey,
	} {
		if handled, cmd := h(msg); handled {
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch globalKeys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.Slides.Stop()
		m.Close()
		return true, tea.Quit
	case keymap.ActionPalette:
		return true, m.Popups.ShowPalette(m.Palette)
	case keymap.ActionHelp:
		return true, m.Popups.ShowHelp([]string{
			keymap.ContextGlobal, keymap.ContextSlideshow, keymap.ContextPhotoList,
		})
	case keymap.ActionSettings:
		return true, m.OpenSettings()
	case keymap.ActionTogglePhotos:
		m.photoListVisible = !m.photoListVisible
		cmd := m.resizeComponents()
		if m.photoListVisible && m.layout().PhotoListShown() {
			m.setFocus(FocusPhotoList)
		} else {
			m.setFocus(FocusSlide)
		}
		return true, cmd
	case keymap.ActionSwitchFocus:
		if m.Focus == FocusSlide && m.layout().PhotoListShown() {
			m.setFocus(FocusPhotoList)
		} else {
			m.setFocus(FocusSlide)
		}
		return true, nil
	case keymap.ActionLoadSamples:
		m.LoadSamples()
		return true, nil
	case keymap.ActionClearPhotos:
		return true, m.RequestClearPhotos()
	case keymap.ActionResetSettings:
		return true, m.ResetSettings()
	}
	return false, nil
}

func (m *Model) handlePhotoListKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.Focus != FocusPhotoList || photoListKeys.Resolve(msg.String()) == "" {
		return false, nil
	}
	var cmd tea.Cmd
	m.PhotoList, cmd = m.PhotoList.Update(msg)
	return true, cmd
}

func (m *Model) handleSlideshowKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	action := slideshowKeys.Resolve(msg.String())
	switch action {
	case keymap.ActionNextSlide:
		m.interp.Dispatch(palette.Effect{Kind: palette.NextSlide})
	case keymap.ActionPrevSlide:
		m.interp.Dispatch(palette.Effect{Kind: palette.PreviousSlide})
	case keymap.ActionRandomSlide:
		m.Slides.Random()
	case keymap.ActionJumpStart:
		m.Slides.GoTo(0)
	case keymap.ActionJumpEnd:
		m.Slides.GoTo(m.Slides.Len() - 1)
	case keymap.ActionPlayPause:
		m.interp.Dispatch(palette.Effect{Kind: palette.TogglePlay})
	case keymap.ActionCycleMode:
		m.interp.Dispatch(palette.Effect{Kind: palette.SetMode, Arg: string(slideshow.NextMode(m.Slides.Mode()))})
	case keymap.ActionShuffle:
		m.interp.Dispatch(palette.Effect{Kind: palette.Shuffle})
	case keymap.ActionNextTheme:
		m.interp.Dispatch(palette.Effect{Kind: palette.NextTheme})
	case keymap.ActionPrevTheme:
		m.interp.Dispatch(palette.Effect{Kind: palette.PreviousTheme})
	case keymap.ActionToggleDark:
		m.interp.Dispatch(palette.Effect{Kind: palette.ToggleDark})
	case keymap.ActionLonger:
		m.Slides.SetDuration(m.Slides.Duration() + durationStep)
	case keymap.ActionShorter:
		m.Slides.SetDuration(m.Slides.Duration() - durationStep)
	case keymap.ActionSlower:
		m.Themes.SetTransitionSpeed(min(m.Themes.TransitionSpeed()+speedStep, settings.MaxSpeed))
	case keymap.ActionFaster:
		m.Themes.SetTransitionSpeed(max(m.Themes.TransitionSpeed()-speedStep, 0))
	case keymap.ActionEditCaption:
		return true, m.EditCaption()
	case keymap.ActionToggleCaption:
		if m.Slide.ToggleCaptions() {
			m.Toasts.Info("Captions shown")
		} else {
			m.Toasts.Info("Captions hidden")
		}
	default:
		return false, nil
	}
	return true, nil
}
