package ingest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slides/internal/slideshow"
)

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	f, err := os.Create(p)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return p
}

func writeText(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("not an image"), 0o600))
	return p
}

func names(photos []slideshow.Photo) []string {
	out := make([]string, len(photos))
	for i, p := range photos {
		out[i] = p.Name
	}
	return out
}

func TestSniff(t *testing.T) {
	dir := t.TempDir()

	format, err := Sniff(writePNG(t, dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	// Extension does not matter
	assert.True(t, IsImage(writePNG(t, dir, "photo.dat")))
	assert.False(t, IsImage(writeText(t, dir, "fake.jpg")))
	assert.False(t, IsImage(filepath.Join(dir, "missing.png")))
}

func TestCollect_Files(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png")
	b := writePNG(t, dir, "b.png")
	txt := writeText(t, dir, "notes.txt")

	photos, r := Collect([]string{a, txt, b}, nil)

	assert.Equal(t, []string{"a.png", "b.png"}, names(photos))
	assert.True(t, filepath.IsAbs(photos[0].Source))
	assert.Equal(t, 2, r.Added)
	assert.Equal(t, 1, r.Rejected)
	assert.Positive(t, r.Bytes)
}

func TestCollect_Directory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "b.png")
	writePNG(t, dir, "a.png")
	writePNG(t, dir, "trip/c.png")
	writePNG(t, dir, ".hidden/d.png")
	writePNG(t, dir, ".e.png")
	writeText(t, dir, "readme.md")

	photos, r := Collect([]string{dir}, nil)

	assert.Equal(t, []string{"a.png", "b.png", "c.png"}, names(photos))
	assert.Equal(t, 1, r.Rejected)
}

func TestCollect_Duplicates(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png")
	other := writePNG(t, dir, "other/a.png")
	b := writePNG(t, dir, "b.png")

	existing := []slideshow.Photo{{Name: "b.png", Source: "/elsewhere/b.png"}}
	photos, r := Collect([]string{a, other, b}, existing)

	assert.Equal(t, []string{"a.png"}, names(photos))
	assert.Equal(t, 2, r.Duplicates)
	assert.Contains(t, r.Message(), "1 photo(s) added, 2 duplicate(s) skipped")
}

func TestCollect_URLs(t *testing.T) {
	photos, r := Collect([]string{
		"https://picsum.photos/seed/ocean/800/600",
		"https://example.com/shots/pier.jpg",
		"https://example.com",
		"ftp://example.com/a.jpg",
	}, nil)

	assert.Equal(t, []string{"600", "pier.jpg", "example.com"}, names(photos))
	assert.Equal(t, "https://example.com/shots/pier.jpg", photos[1].Source)
	assert.Equal(t, 1, r.Rejected)
	assert.Zero(t, r.Bytes)
}

func TestCollect_MissingPath(t *testing.T) {
	photos, r := Collect([]string{"/nonexistent/a.png"}, nil)
	assert.Empty(t, photos)
	assert.True(t, r.Failed())
}

func TestReport_Message(t *testing.T) {
	tests := []struct {
		name string
		r    Report
		want string
	}{
		{"added", Report{Added: 3}, "3 photo(s) added"},
		{"duplicates", Report{Added: 1, Duplicates: 2}, "1 photo(s) added, 2 duplicate(s) skipped"},
		{"only duplicates", Report{Duplicates: 2}, "0 photo(s) added, 2 duplicate(s) skipped"},
		{"size", Report{Added: 2, Bytes: 2_400_000}, "2 photo(s) added · 2.4 MB"},
		{"nothing valid", Report{Rejected: 4}, "Please select valid image files"},
		{"empty", Report{}, "Please select valid image files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Message())
		})
	}
}

func TestSamples(t *testing.T) {
	s := Samples()
	require.Len(t, s, 8)
	assert.Equal(t, "mountain-sunrise.jpg", s[0].Name)
	assert.Equal(t, "https://picsum.photos/seed/mountain/800/600", s[0].Source)

	s[0].Name = "changed"
	assert.Equal(t, "mountain-sunrise.jpg", Samples()[0].Name, "callers get a copy")
}
