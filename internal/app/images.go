package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// imageTimeout bounds loading one photo, remote ones included.
const imageTimeout = 20 * time.Second

// processImageCmd resizes source for the terminal off the UI goroutine.
func (m Model) processImageCmd(source string) tea.Cmd {
	if m.images == nil || !m.images.Enabled() || source == "" {
		return nil
	}
	r := m.images
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), imageTimeout)
		defer cancel()
		return ImageProcessedMsg{Processed: r.Process(ctx, source)}
	}
}

func (m Model) handleImageProcessed(msg ImageProcessedMsg) (tea.Model, tea.Cmd) {
	p := msg.Processed
	if p == nil || m.images == nil {
		return m, nil
	}
	// A slower photo may arrive after the slide moved on
	shown, ok := m.Slides.Shown()
	if !ok || shown.Source != p.Source {
		return m, nil
	}
	if p.Err != nil {
		m.log.Warn("photo shown as placard", "source", p.Source, "error", p.Err.Error())
	}

	m.pendingTransmit += m.images.Apply(p)
	m.syncImage()
	return m, tea.Tick(transmitHold, func(time.Time) tea.Msg {
		return TransmitSentMsg{Source: p.Source}
	})
}

// dropImage removes the terminal image so the placard shows.
func (m *Model) dropImage() {
	if m.images == nil {
		return
	}
	m.pendingTransmit += m.images.Clear()
	m.Slide.SetImage("")
}

// syncImage shows the image placeholder when the terminal holds the photo
// on screen.
func (m *Model) syncImage() {
	photo, ok := m.Slide.Photo()
	if m.images == nil || !ok || !m.images.HasImage() || m.images.Current() != photo.Source {
		m.Slide.SetImage("")
		return
	}
	m.Slide.SetImage(m.images.Placeholder())
}

// resizeImage fits the renderer to the image area and reprocesses the
// photo on screen when the area changed.
func (m *Model) resizeImage(width, height int) tea.Cmd {
	if m.images == nil || !m.images.SetSize(width, height) {
		return nil
	}
	m.dropImage()
	if shown, ok := m.Slides.Shown(); ok {
		return m.processImageCmd(shown.Source)
	}
	return nil
}

// imagePlacement returns the escape placing the image over its placeholder.
func (m Model) imagePlacement() string {
	if m.images == nil || !m.Slide.ImageVisible() {
		return ""
	}
	photo, _ := m.Slide.Photo()
	l := m.layout()
	return m.images.Placement(l.Image.Row(), l.Image.Col(), photo.Source)
}
