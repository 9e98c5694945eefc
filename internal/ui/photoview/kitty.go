package photoview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// Each chunk max 4096 bytes
	chunkSize = 4096
)

// Cell size assumed when the terminal does not report pixels.
const (
	defaultCellWidth  = 8
	defaultCellHeight = 16
)

// KittyProtocol implements ImageProtocol with the Kitty graphics protocol.
// Images are transmitted once and placed by id.
type KittyProtocol struct{}

func (KittyProtocol) Name() string { return "kitty" }

func (KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	return TransmitImage(img, id)
}

func (KittyProtocol) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	return TransmitImageFromPNG(pngData, id)
}

func (KittyProtocol) Place(id uint32, row, col, width, height int) string {
	return PlaceImage(id, row, col, width, height)
}

func (KittyProtocol) Delete(id uint32) string {
	return DeleteImage(id)
}

func (KittyProtocol) CellSize() (width, height int) {
	return defaultCellWidth, defaultCellHeight
}

// TransmitImage encodes img as PNG and transmits it without displaying it.
func TransmitImage(img image.Image, id uint32) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}
	return TransmitImageFromPNG(data, id)
}

// TransmitImageFromPNG sends pre-encoded PNG data to the terminal in chunks.
//
// a=t: transmit only, f=100: PNG, i: image id, q=2: suppress responses,
// m: 1 while more chunks follow.
func TransmitImageFromPNG(pngData []byte, id uint32) (string, error) {
	if len(pngData) == 0 {
		return "", fmt.Errorf("transmit image %d: no data", id)
	}
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}

	return sb.String(), nil
}

// PlaceImage returns the escape sequence displaying a transmitted image.
// row and col are 1-based terminal coordinates, width and height are cells.
// The fixed placement id p=1 makes a new placement replace the previous
// one, and C=1 leaves the cursor where it was.
func PlaceImage(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// DeleteImage returns the escape sequence deleting an image and all its
// placements.
func DeleteImage(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// BlankPlaceholder returns a block of spaces for the image area, so
// lipgloss never measures image escapes.
func BlankPlaceholder(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
