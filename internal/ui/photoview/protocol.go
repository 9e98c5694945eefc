package photoview

import "image"

// ImageProtocol abstracts the terminal image display protocol (Kitty or Sixel).
type ImageProtocol interface {
	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	Prepare(img image.Image, id uint32) (string, error)

	// PrepareFromPNG same but from pre-encoded PNG data.
	PrepareFromPNG(pngData []byte, id uint32) (string, error)

	// Place returns the escape sequence to display the image at (row, col).
	// Kitty: references by ID.
	// Sixel: emits full image data with cursor positioning.
	Place(id uint32, row, col, width, height int) string

	// Delete returns the escape sequence to remove the image.
	// Sixel: no-op (returns "").
	Delete(id uint32) string

	// CellSize returns the pixel size of one terminal cell.
	CellSize() (width, height int)

	// Name identifies the protocol in logs and the settings panel.
	Name() string
}

// TargetPixelSize returns the pixel box a photo shown in the given number
// of cells is resized into.
func TargetPixelSize(p ImageProtocol, widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	cw, ch := p.CellSize()
	return widthCells * cw, heightCells * ch
}
