//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/ui/photoview"
)

// New starts serving the slideshow as org.mpris.MediaPlayer2.slides.
func New() (*Adapter, error) {
	r := newRemote()
	srv := server.NewServer("slides", &rootAdapter{}, &playerAdapter{r: r})

	go func() {
		_ = srv.Listen()
	}()

	return &Adapter{remote: r, stop: srv.Stop}, nil
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (rootAdapter) Raise() error                { return nil }
func (rootAdapter) Quit() error                 { return nil }
func (rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (rootAdapter) Identity() (string, error)   { return "Slides", nil }

//nolint:revive // Method name required by interface.
func (rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"image/jpeg", "image/png", "image/gif", "image/webp", "image/bmp", "image/tiff"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter with the loop
// and shuffle extensions. Controls are queued, properties read the last
// published status.
type playerAdapter struct {
	r *remote
}

func (p *playerAdapter) Next() error      { return p.r.send(CmdNext) }
func (p *playerAdapter) Previous() error  { return p.r.send(CmdPrevious) }
func (p *playerAdapter) Pause() error     { return p.r.send(CmdPause) }
func (p *playerAdapter) PlayPause() error { return p.r.send(CmdPlayPause) }
func (p *playerAdapter) Stop() error      { return p.r.send(CmdStop) }
func (p *playerAdapter) Play() error      { return p.r.send(CmdPlay) }

// Photos have no timeline to seek in.
func (p *playerAdapter) Seek(types.Microseconds) error                { return nil }
func (p *playerAdapter) SetPosition(string, types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	s := p.r.snapshot()
	switch {
	case s.Playing:
		return types.PlaybackStatusPlaying, nil
	case s.HasPhoto:
		return types.PlaybackStatusPaused, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error)        { return 1.0, nil }
func (p *playerAdapter) SetRate(float64) error         { return nil }
func (p *playerAdapter) Volume() (float64, error)      { return 1.0, nil }
func (p *playerAdapter) SetVolume(float64) error       { return nil }
func (p *playerAdapter) Position() (int64, error)      { return 0, nil }
func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

// Metadata describes the photo on screen. The photo is its own art.
func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.r.snapshot()
	if !s.HasPhoto {
		return types.Metadata{}, nil
	}

	title := s.Photo.Caption
	if title == "" {
		title = slideshow.CaptionFromFilename(s.Photo.Name)
	}
	return types.Metadata{
		TrackId:     dbus.ObjectPath(formatPhotoID(s.Photo.Source)),
		Length:      types.Microseconds(int64(s.Duration) * 1_000_000),
		Title:       title,
		Album:       s.Photo.Name,
		TrackNumber: s.Index + 1,
		ArtUrl:      artURL(s.Photo.Source),
	}, nil
}

func (p *playerAdapter) CanGoNext() (bool, error)     { return p.r.snapshot().Total > 1, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.r.snapshot().Total > 1, nil }
func (p *playerAdapter) CanPlay() (bool, error)       { return p.r.snapshot().Total > 0, nil }
func (p *playerAdapter) CanPause() (bool, error)      { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error)       { return false, nil }
func (p *playerAdapter) CanControl() (bool, error)    { return true, nil }

// LoopStatus reports a cycling mode as playlist looping.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.r.snapshot().Mode == slideshow.ModeManual {
		return types.LoopStatusNone, nil
	}
	return types.LoopStatusPlaylist, nil
}

func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	if status == types.LoopStatusNone {
		return p.r.send(CmdModeManual)
	}
	return p.r.send(CmdModeAuto)
}

// Shuffle maps to random mode.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.r.snapshot().Mode == slideshow.ModeRandom, nil
}

func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if shuffle {
		return p.r.send(CmdModeRandom)
	}
	if p.r.snapshot().Mode == slideshow.ModeRandom {
		return p.r.send(CmdModeAuto)
	}
	return nil
}

func artURL(source string) string {
	if source == "" || photoview.IsRemote(source) {
		return source
	}
	return "file://" + source
}

func formatPhotoID(source string) string {
	h := fnv.New64a()
	h.Write([]byte(source))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Photo/%x", h.Sum64())
}
