// Package notify sends desktop notifications over D-Bus, used when photos
// arrive while the terminal may be in the background.
package notify

import (
	"os"

	"github.com/llehouerou/slides/internal/ui/photoview"
)

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // summary, required
	Body       string  // basic markup allowed
	Icon       string  // image path or icon name
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends n and returns its ID. A disabled notifier returns 0
	// and no error.
	Notify(n Notification) (uint32, error)
	// Close withdraws a notification by ID.
	Close(id uint32) error
}

// fallbackIcon is the freedesktop icon name for images.
const fallbackIcon = "image-x-generic"

// PhotosAdded builds the notification for photos ingested from a watched
// folder. The first new photo doubles as the icon when it is a local file.
// replaces lets successive batches update one notification.
func PhotosAdded(summary, firstSource string, replaces uint32) Notification {
	return Notification{
		Title:      "Slides",
		Body:       summary,
		Icon:       iconFor(firstSource),
		Timeout:    -1,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}

func iconFor(source string) string {
	if source == "" || photoview.IsRemote(source) {
		return fallbackIcon
	}
	if _, err := os.Stat(source); err != nil {
		return fallbackIcon
	}
	return source
}
