// Package icons maps semantic icon names to glyphs for the configured style.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder   string
	Photo    string
	Mode     string
	Play     string
	Pause    string
	Shuffle  string
	Theme    string
	Trash    string
	Contrast string
	Settings string
	Next     string
	Previous string
	Caption  string
}

var (
	nerdIcons = Icons{
		Folder:   "\uf07b", // nf-fa-folder
		Photo:    "\uf03e", // nf-fa-image
		Mode:     "󰑓",      // nf-md-refresh
		Play:     "\uf04b", // nf-fa-play
		Pause:    "\uf04c", // nf-fa-pause
		Shuffle:  "󰒟",      // nf-md-shuffle
		Theme:    "\uf53f", // nf-fa-palette
		Trash:    "\uf1f8", // nf-fa-trash
		Contrast: "\uf042", // nf-fa-adjust
		Settings: "\uf013", // nf-fa-cog
		Next:     "\uf051", // nf-fa-step_forward
		Previous: "\uf048", // nf-fa-step_backward
		Caption:  "󰅺",      // nf-md-comment
	}

	unicodeIcons = Icons{
		Folder:   "📁",
		Photo:    "🖼",
		Mode:     "🔄",
		Play:     "▶",
		Pause:    "⏸",
		Shuffle:  "🔀",
		Theme:    "🎨",
		Trash:    "🗑",
		Contrast: "◐",
		Settings: "⚙",
		Next:     "⏭",
		Previous: "⏮",
		Caption:  "💬",
	}

	noneIcons = Icons{
		Play:  ">",
		Pause: "||",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// ByName returns the glyph for a semantic icon name as used by palette
// commands ("play", "theme", ...). Unknown names and the none style yield "".
func ByName(name string) string {
	switch name {
	case "folder":
		return current.Folder
	case "photo":
		return current.Photo
	case "mode":
		return current.Mode
	case "play":
		return current.Play
	case "pause":
		return current.Pause
	case "shuffle":
		return current.Shuffle
	case "theme":
		return current.Theme
	case "trash":
		return current.Trash
	case "contrast":
		return current.Contrast
	case "settings":
		return current.Settings
	case "next":
		return current.Next
	case "previous":
		return current.Previous
	case "caption":
		return current.Caption
	}
	return ""
}

// Prefix returns the named glyph followed by a space, or "" when the style
// has no glyph for it.
func Prefix(name string) string {
	if g := ByName(name); g != "" {
		return g + " "
	}
	return ""
}

// FormatPhoto formats a photo name with the appropriate icon.
func FormatPhoto(name string) string {
	return Prefix("photo") + name
}

// PlayState returns the play or pause glyph. The none style still shows a
// textual marker so the status bar never loses the state.
func PlayState(playing bool) string {
	if playing {
		return current.Play
	}
	return current.Pause
}
