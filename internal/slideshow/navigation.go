package slideshow

import "slices"

// Load replaces the sequence and shows the first photo. Playback stops, any
// transition is cancelled and the mode is kept. Photos without a caption
// get the stored one, if any.
func (e *Engine) Load(photos []Photo) {
	e.Stop()
	e.cancelTransition()

	e.photos = slices.Clone(photos)
	e.index = 0
	if len(e.photos) > 0 {
		captions := e.store.Captions()
		for i := range e.photos {
			if e.photos[i].Caption == "" {
				e.photos[i].Caption = captions[e.photos[i].Name]
			}
		}
	}

	e.log.Debug("photos loaded", "count", len(e.photos))
	e.emit(Loaded{Photos: slices.Clone(e.photos)})
	if len(e.photos) > 0 {
		e.display(0, Forward)
	}
}

// Next moves to the following photo, wrapping around. In random mode it
// picks a random photo instead.
func (e *Engine) Next() {
	if len(e.photos) == 0 {
		return
	}
	if e.mode == ModeRandom {
		e.Random()
		return
	}
	e.display((e.index+1)%len(e.photos), Forward)
}

// Previous moves to the preceding photo, wrapping around.
func (e *Engine) Previous() {
	if len(e.photos) == 0 {
		return
	}
	e.display((e.index-1+len(e.photos))%len(e.photos), Backward)
}

// Random moves to a uniformly chosen photo other than the current one. It
// does nothing with fewer than two photos.
func (e *Engine) Random() {
	n := len(e.photos)
	if n <= 1 {
		return
	}
	i := e.rng.IntN(n)
	for i == e.index {
		i = e.rng.IntN(n)
	}
	e.display(i, Forward)
}

// GoTo moves to index i. Out of range indices are ignored.
func (e *Engine) GoTo(i int) {
	if i < 0 || i >= len(e.photos) {
		return
	}
	dir := Backward
	if i > e.index {
		dir = Forward
	}
	e.display(i, dir)
}

// Shuffle permutes the sequence uniformly and shows the first photo.
func (e *Engine) Shuffle() {
	if len(e.photos) <= 1 {
		return
	}
	for i := len(e.photos) - 1; i > 0; i-- {
		j := e.rng.IntN(i + 1)
		e.photos[i], e.photos[j] = e.photos[j], e.photos[i]
	}
	e.log.Debug("photos shuffled")
	e.emit(OrderChanged{Photos: slices.Clone(e.photos), Index: 0})
	e.display(0, Forward)
}

// UpdateOrder replaces the sequence with a reordering of it. The current
// photo stays current when it is still present; otherwise the photo at the
// clamped index is displayed. When either sequence is empty it behaves like
// Load.
func (e *Engine) UpdateOrder(photos []Photo) {
	if len(photos) == 0 || len(e.photos) == 0 {
		e.Load(photos)
		return
	}

	currentName := e.photos[e.index].Name
	e.photos = slices.Clone(photos)
	idx := e.indexOf(currentName)
	if idx < 0 {
		idx = min(e.index, len(e.photos)-1)
		e.emit(OrderChanged{Photos: slices.Clone(e.photos), Index: idx})
		e.display(idx, Forward)
		return
	}
	e.index = idx
	if e.trans.phase != PhaseIdle {
		if t := e.indexOf(e.trans.target.Name); t >= 0 {
			e.trans.index = t
		}
	}
	e.emit(OrderChanged{Photos: slices.Clone(e.photos), Index: e.index})
}

// UpdateCaption sets and stores the caption of the photo at i. The
// displayed caption is refreshed when i is current.
func (e *Engine) UpdateCaption(i int, caption string) bool {
	if i < 0 || i >= len(e.photos) {
		return false
	}

	e.photos[i].Caption = caption
	e.store.SetCaption(e.photos[i].Name, caption)

	if e.trans.target.Name == e.photos[i].Name {
		e.trans.target.Caption = caption
	}
	if e.trans.shown.Name == e.photos[i].Name {
		e.trans.shown.Caption = caption
	}

	if i == e.index {
		e.refreshCaption()
	}
	return true
}

// ClearCaptions drops every custom caption from the loaded photos. Stored
// captions are left to the caller.
func (e *Engine) ClearCaptions() {
	if len(e.photos) == 0 {
		return
	}
	for i := range e.photos {
		e.photos[i].Caption = ""
	}
	e.trans.target.Caption = ""
	e.trans.shown.Caption = ""
	e.refreshCaption()
}

// refreshCaption re-emits the current caption once it has been revealed.
func (e *Engine) refreshCaption() {
	switch e.trans.phase {
	case PhaseIdle, PhaseRevealing:
		e.emit(e.captionEvent(e.index, e.photos[e.index]))
	}
}

func (e *Engine) indexOf(name string) int {
	return slices.IndexFunc(e.photos, func(p Photo) bool { return p.Name == name })
}

// display makes i current and starts its transition. While playing, the
// advance cycle restarts so progress and timer stay aligned.
func (e *Engine) display(i int, dir Direction) {
	e.index = i
	photo := e.photos[i]

	e.emit(SlideChanged{Index: i, Photo: photo, Direction: dir})
	if e.playing {
		e.restartCycle()
	}
	e.beginTransition(i, photo, dir)
}
