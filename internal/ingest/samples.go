package ingest

import "github.com/llehouerou/slides/internal/slideshow"

var samples = []slideshow.Photo{
	{Name: "mountain-sunrise.jpg", Source: "https://picsum.photos/seed/mountain/800/600"},
	{Name: "ocean-waves.jpg", Source: "https://picsum.photos/seed/ocean/800/600"},
	{Name: "forest-path.jpg", Source: "https://picsum.photos/seed/forest/800/600"},
	{Name: "city-skyline.jpg", Source: "https://picsum.photos/seed/city/800/600"},
	{Name: "desert-sunset.jpg", Source: "https://picsum.photos/seed/desert/800/600"},
	{Name: "snowy-peaks.jpg", Source: "https://picsum.photos/seed/snow/800/600"},
	{Name: "tropical-beach.jpg", Source: "https://picsum.photos/seed/beach/800/600"},
	{Name: "autumn-leaves.jpg", Source: "https://picsum.photos/seed/autumn/800/600"},
}

// Samples returns the built-in sample set, fetched from picsum.photos when
// shown.
func Samples() []slideshow.Photo {
	out := make([]slideshow.Photo, len(samples))
	copy(out, samples)
	return out
}
