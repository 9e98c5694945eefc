//go:build linux

package mpris

import (
	"testing"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slides/internal/slideshow"
)

func newTestPlayer(s Status) (*playerAdapter, *remote) {
	r := newRemote()
	r.status = s
	return &playerAdapter{r: r}, r
}

func TestPlayer_ControlsQueueCommands(t *testing.T) {
	p, r := newTestPlayer(Status{})

	require.NoError(t, p.Next())
	require.NoError(t, p.Previous())
	require.NoError(t, p.PlayPause())
	require.NoError(t, p.Stop())

	for _, want := range []Command{CmdNext, CmdPrevious, CmdPlayPause, CmdStop} {
		assert.Equal(t, want, <-r.cmds)
	}
}

func TestPlayer_PlaybackStatus(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   types.PlaybackStatus
	}{
		{"playing", Status{Playing: true, HasPhoto: true}, types.PlaybackStatusPlaying},
		{"paused on a photo", Status{HasPhoto: true}, types.PlaybackStatusPaused},
		{"nothing loaded", Status{}, types.PlaybackStatusStopped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlayer(tt.status)
			got, err := p.PlaybackStatus()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlayer_Metadata(t *testing.T) {
	p, _ := newTestPlayer(Status{
		HasPhoto: true,
		Photo:    slideshow.Photo{Name: "beach-sunset.jpg", Source: "/photos/beach-sunset.jpg"},
		Index:    1,
		Total:    3,
		Duration: 5,
	})

	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "Beach Sunset", meta.Title)
	assert.Equal(t, "file:///photos/beach-sunset.jpg", meta.ArtUrl)
	assert.EqualValues(t, 2, meta.TrackNumber)
	assert.Equal(t, types.Microseconds(5_000_000), meta.Length)
}

func TestPlayer_MetadataEmpty(t *testing.T) {
	p, _ := newTestPlayer(Status{})
	meta, err := p.Metadata()
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
}

func TestPlayer_ModeMapping(t *testing.T) {
	p, r := newTestPlayer(Status{Mode: slideshow.ModeRandom})

	shuffle, _ := p.Shuffle()
	assert.True(t, shuffle)
	loop, _ := p.LoopStatus()
	assert.Equal(t, types.LoopStatusPlaylist, loop)

	require.NoError(t, p.SetShuffle(false))
	assert.Equal(t, CmdModeAuto, <-r.cmds)
	require.NoError(t, p.SetLoopStatus(types.LoopStatusNone))
	assert.Equal(t, CmdModeManual, <-r.cmds)
}

func TestArtURL(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/id/1/800/600", artURL("https://picsum.photos/id/1/800/600"))
	assert.Equal(t, "file:///a/b.png", artURL("/a/b.png"))
	assert.Empty(t, artURL(""))
}
