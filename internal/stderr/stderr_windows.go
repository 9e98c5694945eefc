//go:build windows

package stderr

import "os"

// Capture is a no-op on Windows, where nothing writes to the console
// handle behind the TUI's back.
type Capture struct{}

// Start returns a capture that leaves stderr untouched.
func Start(func(string)) (*Capture, error) {
	return &Capture{}, nil
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop does nothing.
func (c *Capture) Stop() {}
