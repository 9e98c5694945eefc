package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/mpris"
	"github.com/llehouerou/slides/internal/notify"
	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/slideshow"
)

// applyRemote runs a media player command through the same effects as the
// keyboard and the palette.
func (m *Model) applyRemote(c mpris.Command) {
	m.log.Debug("remote command", "command", c.String())

	switch c {
	case mpris.CmdNext:
		m.interp.Dispatch(palette.Effect{Kind: palette.NextSlide})
	case mpris.CmdPrevious:
		m.interp.Dispatch(palette.Effect{Kind: palette.PreviousSlide})
	case mpris.CmdPlay:
		m.interp.Dispatch(palette.Effect{Kind: palette.Play})
	case mpris.CmdPause:
		m.interp.Dispatch(palette.Effect{Kind: palette.Pause})
	case mpris.CmdPlayPause:
		m.interp.Dispatch(palette.Effect{Kind: palette.TogglePlay})
	case mpris.CmdStop:
		m.Slides.Stop()
	case mpris.CmdModeManual:
		m.interp.Dispatch(palette.Effect{Kind: palette.SetMode, Arg: string(slideshow.ModeManual)})
	case mpris.CmdModeAuto:
		m.interp.Dispatch(palette.Effect{Kind: palette.SetMode, Arg: string(slideshow.ModeAuto)})
	case mpris.CmdModeRandom:
		m.interp.Dispatch(palette.Effect{Kind: palette.SetMode, Arg: string(slideshow.ModeRandom)})
	}
}

// publishStatus shares the slideshow state with media player clients.
func (m Model) publishStatus() {
	if m.remote == nil {
		return
	}
	photo, ok := m.Slides.Current()
	m.remote.Update(mpris.Status{
		Playing:  m.Slides.IsPlaying(),
		Mode:     m.Slides.Mode(),
		Photo:    photo,
		HasPhoto: ok,
		Index:    m.Slides.CurrentIndex(),
		Total:    m.Slides.Len(),
		Duration: m.Slides.Duration(),
	})
}

// notifyCmd sends n off the UI goroutine; the D-Bus call blocks.
func (m Model) notifyCmd(n notify.Notification) tea.Cmd {
	if m.notifier == nil {
		return nil
	}
	notifier, log := m.notifier, m.log
	return func() tea.Msg {
		id, err := notifier.Notify(n)
		if err != nil {
			log.Warn("desktop notification failed", "error", err.Error())
			return nil
		}
		return NotifiedMsg{ID: id}
	}
}
