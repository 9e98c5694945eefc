package slideshow

import (
	"time"

	"github.com/llehouerou/slides/internal/loop"
)

// SetMode stops playback and adopts mode. An invalid mode is logged and
// ignored.
func (e *Engine) SetMode(mode Mode) bool {
	if !mode.Valid() {
		e.log.Warn("invalid mode", "mode", string(mode))
		return false
	}

	e.Stop()
	e.mode = mode
	e.store.SetMode(string(mode))
	e.log.Debug("mode set", "mode", string(mode))
	e.emit(PlaybackChanged{Playing: e.playing, Mode: e.mode})
	return true
}

// Play starts the advance timer. It does nothing without photos or when
// already playing.
func (e *Engine) Play() {
	if len(e.photos) == 0 || e.playing {
		return
	}
	e.playing = true
	e.restartCycle()
	e.emit(PlaybackChanged{Playing: true, Mode: e.mode})
}

// Pause stops the advance timer and freezes the progress indicator.
func (e *Engine) Pause() {
	loop.Stop(e.advance)
	e.advance = nil

	wasPlaying := e.playing
	e.playing = false
	if e.progress.running {
		e.progress.freeze(e.sched.Now())
		e.emitProgress()
	}
	if wasPlaying {
		e.emit(PlaybackChanged{Playing: false, Mode: e.mode})
	}
}

// Stop pauses and resets the progress indicator to zero.
func (e *Engine) Stop() {
	e.Pause()
	if e.progress.frozen != 0 {
		e.progress.reset()
		e.emitProgress()
	}
}

func (e *Engine) TogglePlayPause() {
	if e.playing {
		e.Pause()
	} else {
		e.Play()
	}
}

// SetDuration clamps seconds to [MinDuration, MaxDuration], stores it and
// restarts playback when playing. It returns the applied value.
func (e *Engine) SetDuration(seconds int) int {
	e.duration = clampDuration(seconds)
	e.store.SetDuration(e.duration)

	if e.playing {
		e.Stop()
		e.Play()
	}
	return e.duration
}

func (e *Engine) period() time.Duration {
	return time.Duration(e.duration) * time.Second
}

// restartCycle arms the advance timer and restarts progress for a full
// period.
func (e *Engine) restartCycle() {
	loop.Stop(e.advance)
	e.progress.begin(e.sched.Now(), e.period())
	e.emitProgress()
	e.advance = e.sched.After(e.period(), e.onAdvance)
}

func (e *Engine) onAdvance() {
	e.advance = nil
	if !e.playing {
		return
	}

	if e.mode == ModeRandom {
		e.Random()
	} else {
		e.Next()
	}

	// A slide change re-arms the timer; random with a single photo does not.
	if e.playing && e.advance == nil {
		e.restartCycle()
	}
}

func (e *Engine) emitProgress() {
	e.emit(ProgressChanged{
		Fraction: e.progress.fraction(e.sched.Now()),
		Running:  e.progress.running,
		Period:   e.progress.period,
	})
}
