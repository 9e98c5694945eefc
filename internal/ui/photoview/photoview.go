// Package photoview shows photos in the terminal with the Kitty or Sixel
// graphics protocols.
//
// Work is split the way bubbletea needs it: Process decodes, resizes and
// encodes a photo off the UI goroutine, then Apply hands the result to the
// terminal protocol from Update. View code only asks for a blank
// placeholder and appends the placement escape after the frame.
package photoview

import (
	"bytes"
	"context"
	"image/png"
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"
)

var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Processed is a photo resized for the renderer's current cell box.
type Processed struct {
	Source string
	Data   []byte // PNG, empty when the photo could not be shown
	Cols   int    // cells covered by the resized image
	Rows   int
	Err    error
}

// Renderer tracks the photo currently in terminal memory.
type Renderer struct {
	mu    sync.RWMutex
	proto ImageProtocol
	cache *Cache

	source  string
	imageID uint32
	cols    int
	rows    int

	// Display box in cells
	width  int
	height int
}

// New creates a renderer. A nil protocol disables images; a nil cache
// disables disk caching.
func New(proto ImageProtocol, cache *Cache) *Renderer {
	return &Renderer{proto: proto, cache: cache}
}

// Enabled reports whether the terminal can show images.
func (r *Renderer) Enabled() bool {
	return r.proto != nil
}

// Protocol returns the protocol name, or "none".
func (r *Renderer) Protocol() string {
	if r.proto == nil {
		return "none"
	}
	return r.proto.Name()
}

// SetSize sets the display box in terminal cells. It reports whether the
// box changed, in which case the current photo has to be processed again.
func (r *Renderer) SetSize(width, height int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.width == width && r.height == height {
		return false
	}
	r.width = width
	r.height = height
	return true
}

// Size returns the display box in cells.
func (r *Renderer) Size() (width, height int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.width, r.height
}

// Process loads source and fits it into the display box. It is safe to
// call from a tea.Cmd. The result is nil when source is empty.
func (r *Renderer) Process(ctx context.Context, source string) *Processed {
	if source == "" {
		return nil
	}

	r.mu.RLock()
	width, height := r.width, r.height
	r.mu.RUnlock()

	out := &Processed{Source: source}
	if r.proto == nil || width <= 0 || height <= 0 {
		return out
	}

	data := r.cache.Get(source, width, height)
	if data == nil {
		img, err := Decode(ctx, source)
		if err != nil {
			out.Err = err
			return out
		}
		pw, ph := TargetPixelSize(r.proto, width, height)
		//nolint:gosec // cell boxes are small
		resized := resize.Thumbnail(uint(max(pw, 1)), uint(max(ph, 1)), img, resize.Lanczos3)
		if data, err = encodePNG(resized); err != nil {
			out.Err = err
			return out
		}
		_ = r.cache.Put(source, width, height, data) //nolint:errcheck // cache is best-effort
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		out.Err = err
		return out
	}
	out.Data = data
	out.Cols, out.Rows = r.cellsFor(cfg.Width, cfg.Height, width, height)
	return out
}

// cellsFor converts a pixel size to the cells it covers, capped to the box.
func (r *Renderer) cellsFor(pw, ph, boxW, boxH int) (cols, rows int) {
	cw, ch := r.proto.CellSize()
	cols = min(max((pw+cw-1)/cw, 1), boxW)
	rows = min(max((ph+ch-1)/ch, 1), boxH)
	return cols, rows
}

// Apply makes p the current photo and returns the terminal commands to
// send once: deletion of the previous image and transmission of the new
// one. A nil or empty p clears the image but still records its source.
func (r *Renderer) Apply(p *Processed) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cmd string
	if r.imageID > 0 && r.proto != nil {
		cmd = r.proto.Delete(r.imageID)
	}
	r.imageID = 0
	r.cols, r.rows = 0, 0

	if p == nil {
		r.source = ""
		return cmd
	}
	r.source = p.Source
	if r.proto == nil || len(p.Data) == 0 {
		return cmd
	}

	id := getNextImageID()
	transmit, err := r.proto.PrepareFromPNG(p.Data, id)
	if err != nil {
		return cmd
	}
	r.imageID = id
	r.cols, r.rows = p.Cols, p.Rows
	return cmd + transmit
}

// Placeholder returns blank space covering the display box.
func (r *Renderer) Placeholder() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return BlankPlaceholder(r.width, r.height)
}

// Placement returns the command showing the current image centered in the
// box whose top-left cell is (row, col), 1-based. It is empty when the
// current image is not for source.
func (r *Renderer) Placement(row, col int, source string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.imageID == 0 || r.proto == nil || r.source != source {
		return ""
	}
	row += max(r.height-r.rows, 0) / 2
	col += max(r.width-r.cols, 0) / 2
	return r.proto.Place(r.imageID, row, col, r.cols, r.rows)
}

// HasImage reports whether an image is in terminal memory.
func (r *Renderer) HasImage() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.imageID > 0
}

// Current returns the source of the last applied photo.
func (r *Renderer) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.source
}

// Clear removes the current image from terminal memory.
func (r *Renderer) Clear() string {
	return r.Apply(nil)
}
