//go:build !windows

// Package stderr captures output written straight to file descriptor 2,
// bypassing os.Stderr, so it cannot corrupt the TUI. Image decoders and the
// sqlite driver are the usual writers.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Capture holds the redirected descriptor until Stop.
type Capture struct {
	orig int
	r, w *os.File
	done chan struct{}
	once sync.Once
}

// Start redirects fd 2 into a pipe and hands every non-blank line to sink
// from a background goroutine. Call it before the TUI takes the terminal.
// On error the program can continue with the terminal's stderr.
func Start(sink func(line string)) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	fd := int(os.Stderr.Fd())
	orig, err := unix.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, r: r, w: w, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" && sink != nil {
				sink(line)
			}
		}
	}()
	return c, nil
}

// WriteOriginal writes to the terminal's stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	if c == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = unix.Write(c.orig, []byte(msg))
}

// Stop restores fd 2 and waits for the pending lines to reach the sink.
// It is safe to call on a nil Capture and more than once.
func (c *Capture) Stop() {
	if c == nil {
		return
	}
	c.once.Do(func() {
		_ = unix.Dup2(c.orig, int(os.Stderr.Fd()))
		_ = unix.Close(c.orig)
		// fd 2 no longer refers to the pipe, so closing w ends the reader
		c.w.Close()
		<-c.done
		c.r.Close()
	})
}
