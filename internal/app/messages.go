// Package app is the bubbletea shell around the slideshow engines.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/errmsg"
	"github.com/llehouerou/slides/internal/ingest"
	"github.com/llehouerou/slides/internal/loop"
	"github.com/llehouerou/slides/internal/mpris"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/ui/photoview"
)

// FireMsg hands a fired scheduler timer back to the UI loop.
type FireMsg uint64

// FrameMsg drives animation frames and the progress bar.
type FrameMsg time.Time

// frameInterval is the redraw period while something moves.
const frameInterval = 50 * time.Millisecond

// transmitHold keeps a pending image transmission in the view long enough
// for one frame to be written.
const transmitHold = 100 * time.Millisecond

// PhotosCollectedMsg carries photos gathered off the UI goroutine.
type PhotosCollectedMsg struct {
	Photos  []slideshow.Photo
	Report  ingest.Report
	Watched bool // found by the folder watcher
}

// LoadSamplesMsg replaces the photos with the sample set.
type LoadSamplesMsg struct{}

// WatchBatchMsg carries image files that appeared in watched folders.
type WatchBatchMsg []string

// ImageProcessedMsg carries a photo resized for the terminal.
type ImageProcessedMsg struct {
	Processed *photoview.Processed
}

// TransmitSentMsg clears an image transmission once it was drawn.
type TransmitSentMsg struct {
	Source string
}

// RemoteMsg carries a control request from a media player client.
type RemoteMsg mpris.Command

// NotifiedMsg records the desktop notification to replace next time.
type NotifiedMsg struct {
	ID uint32
}

// ErrorMsg reports a failure that needs the user's attention.
type ErrorMsg struct {
	Op  errmsg.Op
	Err error
}

// waitForFire waits for the next scheduler timer.
func waitForFire(s *loop.Deferred) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case id := <-s.Fired():
			return FireMsg(id)
		case <-s.Done():
			return nil
		}
	}
}

// waitForWatch waits for the next batch from the folder watcher.
func waitForWatch(w *ingest.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		batch, ok := <-w.Batches()
		if !ok {
			return nil
		}
		return WatchBatchMsg(batch)
	}
}

// waitForRemote waits for the next media player command.
func waitForRemote(a *mpris.Adapter) tea.Cmd {
	if a == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case c := <-a.Commands():
			return RemoteMsg(c)
		case <-a.Done():
			return nil
		}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
