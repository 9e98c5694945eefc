// Package mpris exposes the slideshow on D-Bus as an MPRIS media player, so
// media keys and desktop widgets can drive it.
package mpris

import (
	"errors"
	"sync"

	"github.com/llehouerou/slides/internal/slideshow"
)

// Command is a control request from a D-Bus client. The engines are not
// safe for concurrent use, so the app applies commands on its own loop.
type Command int

const (
	CmdNext Command = iota
	CmdPrevious
	CmdPlay
	CmdPause
	CmdPlayPause
	CmdStop
	CmdModeManual
	CmdModeAuto
	CmdModeRandom
)

func (c Command) String() string {
	switch c {
	case CmdNext:
		return "next"
	case CmdPrevious:
		return "previous"
	case CmdPlay:
		return "play"
	case CmdPause:
		return "pause"
	case CmdPlayPause:
		return "play-pause"
	case CmdStop:
		return "stop"
	case CmdModeManual:
		return "mode-manual"
	case CmdModeAuto:
		return "mode-auto"
	case CmdModeRandom:
		return "mode-random"
	}
	return "unknown"
}

// Status is the slideshow state served to clients.
type Status struct {
	Playing  bool
	Mode     slideshow.Mode
	Photo    slideshow.Photo
	HasPhoto bool
	Index    int
	Total    int
	Duration int // seconds per photo
}

// queueSize bounds commands waiting for the UI loop.
const queueSize = 16

var (
	ErrClosed = errors.New("mpris: adapter closed")
	ErrBusy   = errors.New("mpris: command queue full")
)

// remote is shared by the D-Bus handlers and the app.
type remote struct {
	mu     sync.RWMutex
	status Status
	cmds   chan Command
	done   chan struct{}
}

func newRemote() *remote {
	return &remote{
		cmds: make(chan Command, queueSize),
		done: make(chan struct{}),
	}
}

// send queues c without blocking the D-Bus goroutine.
func (r *remote) send(c Command) error {
	select {
	case <-r.done:
		return ErrClosed
	default:
	}
	select {
	case r.cmds <- c:
		return nil
	default:
		return ErrBusy
	}
}

func (r *remote) snapshot() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Adapter connects the slideshow to MPRIS. A nil *Adapter is valid and
// does nothing.
type Adapter struct {
	*remote
	stop func() error
	once sync.Once
}

// Detached returns an adapter without a D-Bus server. Commands only
// arrive through Send.
func Detached() *Adapter {
	return &Adapter{remote: newRemote()}
}

// Send queues c as if a client had sent it.
func (a *Adapter) Send(c Command) error {
	if a == nil {
		return ErrClosed
	}
	return a.send(c)
}

// Commands returns the control requests from clients.
func (a *Adapter) Commands() <-chan Command {
	if a == nil {
		return nil
	}
	return a.cmds
}

// Done is closed by Close.
func (a *Adapter) Done() <-chan struct{} {
	if a == nil {
		return nil
	}
	return a.done
}

// Update publishes the slideshow state to clients.
func (a *Adapter) Update(s Status) {
	if a == nil {
		return
	}
	a.mu.Lock()
	a.status = s
	a.mu.Unlock()
}

// Status returns the last published state.
func (a *Adapter) Status() Status {
	if a == nil {
		return Status{}
	}
	return a.snapshot()
}

// Close stops serving clients. It is safe to call more than once.
func (a *Adapter) Close() error {
	if a == nil {
		return nil
	}
	var err error
	a.once.Do(func() {
		close(a.done)
		if a.stop != nil {
			err = a.stop()
		}
	})
	return err
}
