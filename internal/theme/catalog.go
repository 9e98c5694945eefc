// internal/theme/catalog.go
package theme

// ID identifies a theme in the catalog.
type ID string

const (
	Direct     ID = "theme-a"
	Horizontal ID = "theme-b"
	Vertical   ID = "theme-c"
	Fade       ID = "theme-d"
)

// Motion describes how slides move during a transition.
type Motion int

const (
	MotionNone Motion = iota
	MotionHorizontal
	MotionVertical
	MotionFade
)

// String returns the motion name.
func (m Motion) String() string {
	switch m {
	case MotionNone:
		return "None"
	case MotionHorizontal:
		return "Horizontal"
	case MotionVertical:
		return "Vertical"
	case MotionFade:
		return "Fade"
	default:
		return "Unknown"
	}
}

// Info describes a catalog entry.
type Info struct {
	ID          ID
	Name        string
	Description string
	Motion      Motion
	// StaggerWords reveals captions one word at a time.
	StaggerWords bool
}

var catalog = []Info{
	{
		ID:          Direct,
		Name:        "Theme A - Direct",
		Description: "No animation, direct display",
		Motion:      MotionNone,
	},
	{
		ID:          Horizontal,
		Name:        "Theme B - Horizontal",
		Description: "Image slides from left to right",
		Motion:      MotionHorizontal,
	},
	{
		ID:           Vertical,
		Name:         "Theme C - Vertical",
		Description:  "Image slides from bottom to top with word stagger",
		Motion:       MotionVertical,
		StaggerWords: true,
	},
	{
		ID:          Fade,
		Name:        "Theme D - Fade",
		Description: "Smooth crossfade transition",
		Motion:      MotionFade,
	},
}

// All returns the catalog in display order.
func All() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Info, bool) {
	for _, info := range catalog {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}

// Default is the first catalog entry.
func Default() ID {
	return catalog[0].ID
}

func indexOf(id ID) int {
	for i, info := range catalog {
		if info.ID == id {
			return i
		}
	}
	return 0
}
