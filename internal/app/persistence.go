// internal/app/persistence.go
package app

import (
	"github.com/llehouerou/slides/internal/prefs"
	"github.com/llehouerou/slides/internal/slideshow"
)

// SavePhotos persists the current sequence so the next session can restore
// it. Only names and sources are stored; captions live in their own map.
func (m *Model) SavePhotos() {
	photos := m.Slides.Photos()
	records := make([]prefs.PhotoRecord, len(photos))
	for i, p := range photos {
		records[i] = prefs.PhotoRecord{Name: p.Name, Source: p.Source}
	}
	if !m.store.SetPhotos(records) {
		m.log.Warn("photo list not saved", "count", len(records))
	}
}

// savedPhotos returns the sequence stored by the last session.
func (m *Model) savedPhotos() []slideshow.Photo {
	records := m.store.Photos()
	photos := make([]slideshow.Photo, 0, len(records))
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		photos = append(photos, slideshow.Photo{Name: r.Name, Source: r.Source})
	}
	return photos
}
