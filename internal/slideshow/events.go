package slideshow

import "time"

// Event is delivered synchronously to listeners registered with OnEvent.
type Event interface {
	isEvent()
}

// Loaded is emitted when a new photo set replaces the old one.
type Loaded struct {
	Photos []Photo
}

// SlideChanged is emitted as soon as the current index moves, before the
// transition plays.
type SlideChanged struct {
	Index     int
	Photo     Photo
	Direction Direction
}

// PhaseChanged is emitted on every transition step. Photo is the photo
// visible during the phase: the outgoing one while exiting, the incoming
// one from the swap onwards.
type PhaseChanged struct {
	Phase     Phase
	Photo     Photo
	HasPhoto  bool
	Direction Direction
	Duration  time.Duration
}

// CaptionShown is emitted when a caption is revealed or refreshed. Words is
// set when the active theme staggers captions word by word.
type CaptionShown struct {
	Index int
	Text  string
	Words []string
}

// PlaybackChanged is emitted when playing state or mode changes.
type PlaybackChanged struct {
	Playing bool
	Mode    Mode
}

// ProgressChanged is emitted when the progress indicator starts, freezes or
// resets. Between events a running indicator advances linearly over Period.
type ProgressChanged struct {
	Fraction float64
	Running  bool
	Period   time.Duration
}

// OrderChanged is emitted when the sequence is reordered in place.
type OrderChanged struct {
	Photos []Photo
	Index  int
}

func (Loaded) isEvent()          {}
func (SlideChanged) isEvent()    {}
func (PhaseChanged) isEvent()    {}
func (CaptionShown) isEvent()    {}
func (PlaybackChanged) isEvent() {}
func (ProgressChanged) isEvent() {}
func (OrderChanged) isEvent()    {}
