package photolist

import (
	"slices"

	"github.com/llehouerou/slides/internal/slideshow"
)

// DefaultHistorySize is how many orders undo can walk back through.
const DefaultHistorySize = 50

// History keeps successive photo orders for undo and redo.
type History struct {
	states  [][]slideshow.Photo
	current int // -1 before the first Push
	maxSize int
}

// NewHistory creates a history holding at most maxSize orders.
func NewHistory(maxSize int) *History {
	return &History{
		states:  make([][]slideshow.Photo, 0, maxSize),
		current: -1,
		maxSize: max(maxSize, 1),
	}
}

// Reset forgets every state.
func (h *History) Reset() {
	h.states = h.states[:0]
	h.current = -1
}

// Push records a new order, dropping any redo states and the oldest states
// beyond the limit.
func (h *History) Push(photos []slideshow.Photo) {
	if h.current < len(h.states)-1 {
		h.states = h.states[:h.current+1]
	}

	h.states = append(h.states, slices.Clone(photos))
	h.current = len(h.states) - 1

	if len(h.states) > h.maxSize {
		excess := len(h.states) - h.maxSize
		h.states = h.states[excess:]
		h.current -= excess
	}
}

// Current returns the order at the history cursor.
func (h *History) Current() ([]slideshow.Photo, bool) {
	if h.current < 0 {
		return nil, false
	}
	return slices.Clone(h.states[h.current]), true
}

// Undo steps back and returns the previous order.
func (h *History) Undo() ([]slideshow.Photo, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.current--
	return slices.Clone(h.states[h.current]), true
}

// Redo steps forward and returns the next order.
func (h *History) Redo() ([]slideshow.Photo, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.current++
	return slices.Clone(h.states[h.current]), true
}

func (h *History) CanUndo() bool {
	return h.current > 0
}

func (h *History) CanRedo() bool {
	return h.current < len(h.states)-1
}
