package palette

// Category names.
const (
	CategoryMode       = "Mode"
	CategoryTheme      = "Theme"
	CategoryPlayback   = "Playback"
	CategoryPhotos     = "Photos"
	CategoryDisplay    = "Display"
	CategoryNavigation = "Navigation"
)

// Builtin returns the default command catalog.
func Builtin() []Command {
	return []Command{
		{ID: "mode-manual", Label: "Switch to Manual Mode", Category: CategoryMode, Icon: "mode",
			Effect: Effect{Kind: SetMode, Arg: "manual"}},
		{ID: "mode-auto", Label: "Switch to Auto-Play Mode", Category: CategoryMode, Icon: "play",
			Effect: Effect{Kind: SetMode, Arg: "auto"}},
		{ID: "mode-random", Label: "Switch to Random Mode", Category: CategoryMode, Icon: "shuffle",
			Effect: Effect{Kind: SetMode, Arg: "random"}},

		{ID: "theme-a", Label: "Theme A - Direct Display", Category: CategoryTheme, Icon: "theme",
			Effect: Effect{Kind: ApplyTheme, Arg: "theme-a"}},
		{ID: "theme-b", Label: "Theme B - Horizontal Slide", Category: CategoryTheme, Icon: "theme",
			Effect: Effect{Kind: ApplyTheme, Arg: "theme-b"}},
		{ID: "theme-c", Label: "Theme C - Vertical Slide", Category: CategoryTheme, Icon: "theme",
			Effect: Effect{Kind: ApplyTheme, Arg: "theme-c"}},
		{ID: "theme-d", Label: "Theme D - Fade Effect", Category: CategoryTheme, Icon: "theme",
			Effect: Effect{Kind: ApplyTheme, Arg: "theme-d"}},
		{ID: "theme-next", Label: "Next Theme", Category: CategoryTheme, Icon: "theme", Shortcut: "t",
			Effect: Effect{Kind: NextTheme}},
		{ID: "theme-previous", Label: "Previous Theme", Category: CategoryTheme, Icon: "theme", Shortcut: "T",
			Effect: Effect{Kind: PreviousTheme}},

		{ID: "play", Label: "Play Slideshow", Category: CategoryPlayback, Icon: "play", Shortcut: "Space",
			Effect: Effect{Kind: Play}},
		{ID: "pause", Label: "Pause Slideshow", Category: CategoryPlayback, Icon: "pause", Shortcut: "Space",
			Effect: Effect{Kind: Pause}},
		{ID: "toggle-play", Label: "Toggle Play/Pause", Category: CategoryPlayback, Icon: "play", Shortcut: "Space",
			Effect: Effect{Kind: TogglePlay}},

		{ID: "shuffle", Label: "Shuffle Photos", Category: CategoryPhotos, Icon: "shuffle", Shortcut: "s",
			Effect: Effect{Kind: Shuffle}},
		{ID: "load-samples", Label: "Load Sample Photos", Category: CategoryPhotos, Icon: "photo",
			Effect: Effect{Kind: LoadSamples}},
		{ID: "clear-photos", Label: "Clear All Photos", Category: CategoryPhotos, Icon: "trash",
			Effect: Effect{Kind: ClearPhotos}},

		{ID: "toggle-dark-mode", Label: "Toggle Dark/Light Mode", Category: CategoryDisplay, Icon: "contrast", Shortcut: "D",
			Effect: Effect{Kind: ToggleDark}},
		{ID: "open-settings", Label: "Open Settings Panel", Category: CategoryDisplay, Icon: "settings", Shortcut: ",",
			Effect: Effect{Kind: OpenSettings}},

		{ID: "next-slide", Label: "Next Slide", Category: CategoryNavigation, Icon: "next", Shortcut: "→",
			Effect: Effect{Kind: NextSlide}},
		{ID: "prev-slide", Label: "Previous Slide", Category: CategoryNavigation, Icon: "previous", Shortcut: "←",
			Effect: Effect{Kind: PreviousSlide}},
	}
}
