// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/errmsg"
	"github.com/llehouerou/slides/internal/mpris"
	"github.com/llehouerou/slides/internal/ui/action"
	"github.com/llehouerou/slides/internal/ui/layout"
	"github.com/llehouerou/slides/internal/ui/slideview"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	model, ok := next.(Model)
	if !ok {
		return next, cmd
	}
	model, settleCmd := model.settle()
	return model, tea.Batch(cmd, settleCmd)
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case FireMsg:
		if m.deferred == nil {
			return m, nil
		}
		m.deferred.Dispatch(uint64(msg))
		return m, waitForFire(m.deferred)

	case FrameMsg:
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case PhotosCollectedMsg:
		return m.handlePhotosCollected(msg)

	case LoadSamplesMsg:
		m.LoadSamples()
		return m, nil

	case WatchBatchMsg:
		return m, tea.Batch(
			collectWatchedCmd(msg, m.Slides.Photos()),
			waitForWatch(m.watcher),
		)

	case ImageProcessedMsg:
		return m.handleImageProcessed(msg)

	case TransmitSentMsg:
		if m.images != nil && m.images.Current() == msg.Source {
			m.pendingTransmit = ""
		}
		return m, nil

	case RemoteMsg:
		m.applyRemote(mpris.Command(msg))
		return m, waitForRemote(m.remote)

	case NotifiedMsg:
		m.notifyID = msg.ID
		return m, nil

	case ErrorMsg:
		m.Popups.ShowError(errmsg.Format(msg.Op, msg.Err))
		return m, nil

	case action.Msg:
		return m.handleAction(msg)
	}

	// Cursor blink and other popup-internal messages
	return m, m.Popups.Update(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)
	cmd := m.resizeComponents()
	return m, cmd
}

// layout places the panels for the current window and state. Toasts are
// drawn over the bottom of the slide panel, so they never move the photo.
func (m Model) layout() layout.Layout {
	return layout.Compute(m.Width, m.Height, layout.Opts{
		PhotoListVisible: m.photoListVisible,
		CaptionHeight:    slideview.CaptionHeight,
	})
}

// resizeComponents sizes every panel from the layout. It runs after each
// change that moves panels: window size and the photo list toggle.
func (m *Model) resizeComponents() tea.Cmd {
	l := m.layout()
	m.Slide.SetSize(l.Slide.W, l.Slide.H)
	if l.PhotoListShown() {
		m.PhotoList.SetSize(l.PhotoList.W, l.PhotoList.H)
	}
	if !l.PhotoListShown() && m.Focus == FocusPhotoList {
		m.setFocus(FocusSlide)
	}
	return m.resizeImage(l.Image.W, l.Image.H)
}

func (m *Model) setFocus(f FocusTarget) {
	m.Focus = f
	m.Slide.SetFocused(f == FocusSlide)
	m.PhotoList.SetFocused(f == FocusPhotoList)
	if f == FocusPhotoList {
		m.PhotoList.SyncCursor()
	}
}
