package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/ingest"
	"github.com/llehouerou/slides/internal/notify"
	"github.com/llehouerou/slides/internal/slideshow"
)

// clearPhotosContext tags the confirmation asked before clearing.
type clearPhotosContext struct{}

// collectCmd sniffs paths off the UI goroutine.
func collectCmd(paths []string, existing []slideshow.Photo) tea.Cmd {
	return func() tea.Msg {
		photos, report := ingest.Collect(paths, existing)
		return PhotosCollectedMsg{Photos: photos, Report: report}
	}
}

func collectWatchedCmd(paths []string, existing []slideshow.Photo) tea.Cmd {
	return func() tea.Msg {
		msg := collectCmd(paths, existing)().(PhotosCollectedMsg)
		msg.Watched = true
		return msg
	}
}

// AddPaths ingests files and folders, the keyboard analog of dropping
// files on the window.
func (m *Model) AddPaths(paths []string) tea.Cmd {
	if len(paths) == 0 {
		return nil
	}
	return collectCmd(paths, m.Slides.Photos())
}

func (m Model) handlePhotosCollected(msg PhotosCollectedMsg) (tea.Model, tea.Cmd) {
	current := m.Slides.Photos()
	fresh := m.withoutLoaded(msg.Photos, current)
	report := msg.Report
	// Photos added while the collection ran count as duplicates now
	report.Duplicates += len(msg.Photos) - len(fresh)
	report.Added = len(fresh)

	if msg.Watched {
		if len(fresh) == 0 {
			return m, nil
		}
		m.Slides.UpdateOrder(append(current, fresh...))
		m.Toasts.Info(report.Message())
		return m, m.notifyCmd(notify.PhotosAdded(report.Message(), fresh[0].Source, m.notifyID))
	}

	if report.Failed() {
		m.Toasts.Error(report.Message())
		return m, nil
	}
	if len(fresh) > 0 {
		m.Slides.Load(append(current, fresh...))
	}
	m.Toasts.Success(report.Message())
	return m, nil
}

// withoutLoaded drops photos whose names are already loaded and fills in
// stored captions.
func (m Model) withoutLoaded(photos, loaded []slideshow.Photo) []slideshow.Photo {
	seen := make(map[string]bool, len(loaded))
	for _, p := range loaded {
		seen[p.Name] = true
	}
	out := make([]slideshow.Photo, 0, len(photos))
	for _, p := range photos {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		if p.Caption == "" {
			p.Caption, _ = m.store.Caption(p.Name)
		}
		out = append(out, p)
	}
	return out
}

// LoadSamples replaces the photos with the built-in sample set.
func (m *Model) LoadSamples() {
	samples := ingest.Samples()
	m.Slides.Load(samples)
	m.Toasts.Success(fmt.Sprintf("%d sample photos loaded", len(samples)))
}

// RequestClearPhotos asks before removing every photo.
func (m *Model) RequestClearPhotos() tea.Cmd {
	if m.Slides.Len() == 0 {
		m.Toasts.Info("No photos to clear")
		return nil
	}
	return m.Popups.ShowConfirm("Clear Photos",
		"Are you sure you want to clear all photos?", clearPhotosContext{})
}

// ClearPhotos removes every photo.
func (m *Model) ClearPhotos() {
	m.Slides.Load(nil)
	m.Toasts.Success("All photos cleared")
}
