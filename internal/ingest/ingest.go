// Package ingest turns file paths, folders and URLs into slideshow photos.
// Files are recognized by decoding their image header, not by extension.
package ingest

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF header sniffing
	_ "image/jpeg" // JPEG header sniffing
	_ "image/png"  // PNG header sniffing
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	_ "golang.org/x/image/bmp"  // BMP header sniffing
	_ "golang.org/x/image/tiff" // TIFF header sniffing
	_ "golang.org/x/image/webp" // WebP header sniffing

	"github.com/llehouerou/slides/internal/slideshow"
)

// Report counts the outcome of one ingestion.
type Report struct {
	Added      int
	Duplicates int
	Rejected   int
	Bytes      int64 // size of the added local files
}

// Failed reports that nothing usable was offered: every candidate was
// rejected.
func (r Report) Failed() bool {
	return r.Added == 0 && r.Duplicates == 0
}

// Message is the notification text for the report.
func (r Report) Message() string {
	if r.Failed() {
		return "Please select valid image files"
	}
	msg := fmt.Sprintf("%d photo(s) added", r.Added)
	if r.Duplicates > 0 {
		msg += fmt.Sprintf(", %d duplicate(s) skipped", r.Duplicates)
	}
	if r.Bytes > 0 {
		msg += " · " + humanize.Bytes(uint64(r.Bytes))
	}
	return msg
}

// Sniff returns the image format of the file at p, such as "jpeg" or
// "webp".
func Sniff(p string) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", p, err)
	}
	return format, nil
}

// IsImage reports whether p is a decodable image.
func IsImage(p string) bool {
	_, err := Sniff(p)
	return err == nil
}

// Collect gathers the photos found at paths. Directories are walked
// recursively, skipping hidden entries; http(s) URLs are taken as is. A
// photo whose name is already in existing, or earlier in the batch, counts
// as a duplicate.
func Collect(paths []string, existing []slideshow.Photo) ([]slideshow.Photo, Report) {
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Name] = true
	}

	var (
		out []slideshow.Photo
		r   Report
	)
	add := func(name, source string, size int64) {
		if seen[name] {
			r.Duplicates++
			return
		}
		seen[name] = true
		out = append(out, slideshow.Photo{Name: name, Source: source})
		r.Added++
		r.Bytes += size
	}

	for _, p := range paths {
		if name, ok := remoteName(p); ok {
			add(name, p, 0)
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			r.Rejected++
			continue
		}
		if !info.IsDir() {
			if abs, ok := imagePath(p); ok {
				add(filepath.Base(abs), abs, info.Size())
			} else {
				r.Rejected++
			}
			continue
		}

		_ = filepath.WalkDir(p, func(file string, d fs.DirEntry, walkErr error) error {
			// Unreadable entries are skipped so one bad folder does not stop the walk
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if file != p && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			abs, ok := imagePath(file)
			if !ok {
				r.Rejected++
				return nil
			}
			var size int64
			if fi, err := d.Info(); err == nil {
				size = fi.Size()
			}
			add(filepath.Base(abs), abs, size)
			return nil
		})
	}
	return out, r
}

func imagePath(p string) (string, bool) {
	if !IsImage(p) {
		return "", false
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p, true
	}
	return abs, true
}

// remoteName returns the photo name for an http(s) URL: the last path
// element, or the host when the path is empty.
func remoteName(s string) (string, bool) {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return "", false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", false
	}
	if base := path.Base(u.Path); base != "/" && base != "." {
		return base, true
	}
	return u.Host, true
}
