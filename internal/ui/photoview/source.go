package photoview

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// maxPhotoBytes caps how much of a photo is read.
const maxPhotoBytes = 64 << 20

var httpClient = &http.Client{Timeout: 20 * time.Second}

// IsRemote reports whether source is an http(s) URL rather than a file.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Open returns a reader for a local file or an http(s) URL.
func Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !IsRemote(source) {
		return os.Open(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", source, resp.Status)
	}
	return resp.Body, nil
}

// Decode reads and decodes the photo at source.
func Decode(ctx context.Context, source string) (image.Image, error) {
	rc, err := Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(io.LimitReader(rc, maxPhotoBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return img, nil
}
