//go:build !windows

package stderr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestCapture_ForwardsLines(t *testing.T) {
	var (
		mu    sync.Mutex
		lines []string
	)
	c, err := Start(func(line string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, line)
	})
	require.NoError(t, err)

	_, err = unix.Write(2, []byte("decoder warning\n\n  padded  \n"))
	require.NoError(t, err)
	c.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"decoder warning", "padded"}, lines)
}

func TestCapture_StopTwice(t *testing.T) {
	c, err := Start(nil)
	require.NoError(t, err)
	c.Stop()
	assert.NotPanics(t, c.Stop)
}

func TestCapture_NilSafe(t *testing.T) {
	var c *Capture
	assert.NotPanics(t, c.Stop)
}
