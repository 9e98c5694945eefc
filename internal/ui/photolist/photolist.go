// Package photolist is the side panel listing the loaded photos. It lets
// the user jump to a photo, reorder the sequence from the keyboard, remove
// photos and undo those edits.
package photolist

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/slides/internal/keymap"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/action"
	"github.com/llehouerou/slides/internal/ui/cursor"
)

var keys = keymap.NewResolver(keymap.ByContext(keymap.ContextPhotoList))

// Model represents the photo list panel state.
type Model struct {
	ui.Base
	photos  []slideshow.Photo
	current int // index shown by the engine, -1 when empty
	cursor  cursor.Cursor
	history *History
}

// New creates an empty photo list.
func New() Model {
	return Model{
		current: -1,
		cursor:  cursor.New(ui.ScrollMargin),
		history: NewHistory(DefaultHistorySize),
	}
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.cursor.SetBounds(len(m.photos), m.listHeight())
}

func (m Model) listHeight() int {
	return max(m.ListHeight(ui.PanelOverhead), 0)
}

// Photos returns the listed sequence.
func (m Model) Photos() []slideshow.Photo {
	return slices.Clone(m.photos)
}

// Cursor returns the highlighted index.
func (m Model) Cursor() int {
	return m.cursor.Pos()
}

// CanUndo reports whether an earlier order is available.
func (m Model) CanUndo() bool {
	return m.history.CanUndo()
}

// CanRedo reports whether an undone order can be restored.
func (m Model) CanRedo() bool {
	return m.history.CanRedo()
}

// SyncCursor moves the cursor to the photo on screen.
func (m *Model) SyncCursor() {
	if m.current >= 0 {
		m.cursor.Jump(m.current)
	}
}

// HandleEvent follows the playback engine. Orders arriving from elsewhere,
// such as a shuffle, become undoable.
func (m *Model) HandleEvent(ev slideshow.Event) {
	switch ev := ev.(type) {
	case slideshow.Loaded:
		m.photos = slices.Clone(ev.Photos)
		m.current = -1
		if len(m.photos) > 0 {
			m.current = 0
		}
		// A list edit that empties the set, or refills it by undo, comes
		// back as a load of the order already on top of the history.
		if top, ok := m.history.Current(); !ok || !sameOrder(top, ev.Photos) {
			m.history.Reset()
			m.history.Push(m.photos)
		}
		m.cursor.SetBounds(len(m.photos), m.listHeight())
		m.cursor.First()
	case slideshow.SlideChanged:
		m.current = ev.Index
		if !m.IsFocused() {
			m.SyncCursor()
		}
	case slideshow.OrderChanged:
		m.photos = slices.Clone(ev.Photos)
		m.current = ev.Index
		if top, ok := m.history.Current(); !ok || !sameOrder(top, ev.Photos) {
			m.history.Push(ev.Photos)
		}
		m.cursor.SetBounds(len(m.photos), m.listHeight())
	}
}

// Update handles key presses while the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return m, nil
	}

	switch keys.Resolve(keyMsg.String()) {
	case keymap.ActionMoveDown:
		m.cursor.Move(1)
	case keymap.ActionMoveUp:
		m.cursor.Move(-1)
	case keymap.ActionJumpStart:
		m.cursor.First()
	case keymap.ActionJumpEnd:
		m.cursor.Last()
	case keymap.ActionSelect:
		if len(m.photos) > 0 {
			return m, emit(Show{Index: m.cursor.Pos()})
		}
	case keymap.ActionMoveItemUp:
		return m.moveItem(-1)
	case keymap.ActionMoveItemDown:
		return m.moveItem(1)
	case keymap.ActionDelete:
		return m.remove()
	case keymap.ActionUndo:
		if photos, ok := m.history.Undo(); ok {
			return m.apply(photos, "undo")
		}
	case keymap.ActionRedo:
		if photos, ok := m.history.Redo(); ok {
			return m.apply(photos, "redo")
		}
	case keymap.ActionClose:
		return m, emit(Close{})
	}
	return m, nil
}

// moveItem swaps the highlighted photo with its neighbour; the cursor
// follows the photo.
func (m Model) moveItem(delta int) (Model, tea.Cmd) {
	i := m.cursor.Pos()
	j := i + delta
	if len(m.photos) < 2 || j < 0 || j >= len(m.photos) {
		return m, nil
	}

	photos := slices.Clone(m.photos)
	photos[i], photos[j] = photos[j], photos[i]
	m.history.Push(photos)
	m.cursor.Jump(j)
	return m.apply(photos, "move")
}

func (m Model) remove() (Model, tea.Cmd) {
	if len(m.photos) == 0 {
		return m, nil
	}
	photos := slices.Delete(slices.Clone(m.photos), m.cursor.Pos(), m.cursor.Pos()+1)
	m.history.Push(photos)
	return m.apply(photos, "remove")
}

// apply shows photos immediately and asks the app to hand them to the
// engine. Snapshots restored by undo pick up captions edited since.
func (m Model) apply(photos []slideshow.Photo, reason string) (Model, tea.Cmd) {
	for i, p := range photos {
		if k := slices.IndexFunc(m.photos, func(q slideshow.Photo) bool { return q.Name == p.Name }); k >= 0 {
			photos[i] = m.photos[k]
		}
	}
	m.photos = photos
	m.cursor.SetBounds(len(m.photos), m.listHeight())
	return m, emit(Reorder{Photos: slices.Clone(photos), Reason: reason})
}

func emit(a action.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg(a) }
}

func sameOrder(a, b []slideshow.Photo) bool {
	return slices.EqualFunc(a, b, func(x, y slideshow.Photo) bool { return x.Name == y.Name })
}
