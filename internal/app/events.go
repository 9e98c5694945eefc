package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/palette"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/theme"
	"github.com/llehouerou/slides/internal/ui/styles"
)

// eventQueue collects engine notifications during one Update. Listeners run
// inside engine calls, where the model being updated is not reachable, so
// the events are applied to the panels once the message is handled.
type eventQueue struct {
	events []slideshow.Event
	themes []theme.State
}

func (q *eventQueue) pushEvent(ev slideshow.Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) pushTheme(s theme.State) {
	q.themes = append(q.themes, s)
}

func (q *eventQueue) take() ([]slideshow.Event, []theme.State) {
	events, themes := q.events, q.themes
	q.events, q.themes = nil, nil
	return events, themes
}

// settle applies queued engine events to the panels, runs screen requests
// from the palette and keeps the frame ticker alive while something moves.
// Applying an event can queue more (a confirmed clear loads an empty set),
// so it loops until the queue is drained.
func (m Model) settle() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for {
		events, themes := m.events.take()
		requests := m.interp.TakeRequests()
		if len(events) == 0 && len(themes) == 0 && len(requests) == 0 {
			break
		}
		for _, s := range themes {
			m.applyTheme(s)
		}
		for _, ev := range events {
			cmds = append(cmds, m.applyEvent(ev))
		}
		for _, kind := range requests {
			cmds = append(cmds, m.runRequest(kind))
		}
	}

	m.publishStatus()

	if !m.ticking && m.moving() {
		m.ticking = true
		cmds = append(cmds, frameCmd())
	}
	return m, tea.Batch(cmds...)
}

// moving reports whether the next frame differs from this one.
func (m Model) moving() bool {
	return m.Slide.Animating() || m.Slides.Progress().Running
}

func (m *Model) applyTheme(s theme.State) {
	styles.Use(s.Theme, s.DarkMode)
	m.Slide.SetMotion(s.Info().Motion)
}

func (m *Model) applyEvent(ev slideshow.Event) tea.Cmd {
	m.Slide.HandleEvent(ev)
	m.PhotoList.HandleEvent(ev)

	switch ev := ev.(type) {
	case slideshow.Loaded:
		m.SavePhotos()
		if len(ev.Photos) == 0 {
			m.dropImage()
		}
	case slideshow.OrderChanged:
		m.SavePhotos()
	case slideshow.PhaseChanged:
		if ev.Phase == slideshow.PhaseSwapping && ev.HasPhoto {
			m.dropImage()
			return m.processImageCmd(ev.Photo.Source)
		}
	}
	return nil
}

func (m *Model) runRequest(kind palette.Kind) tea.Cmd {
	switch kind {
	case palette.LoadSamples:
		m.LoadSamples()
	case palette.OpenSettings:
		return m.OpenSettings()
	case palette.ClearPhotos:
		return m.RequestClearPhotos()
	}
	return nil
}
