package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "slideshow", "photolist"
}

// Help contexts.
const (
	ContextGlobal    = "global"
	ContextSlideshow = "slideshow"
	ContextPhotoList = "photolist"
)

// Bindings contains all key bindings, used both for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionPalette, []string{"ctrl+k", "/", ":"}, "Command palette", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionSettings, []string{","}, "Settings", ContextGlobal},
	{ActionTogglePhotos, []string{"p"}, "Toggle photo list", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Switch panel focus", ContextGlobal},
	{ActionLoadSamples, []string{"L"}, "Load sample photos", ContextGlobal},
	{ActionClearPhotos, []string{"X"}, "Clear all photos", ContextGlobal},
	{ActionResetSettings, []string{"ctrl+r"}, "Reset preferences", ContextGlobal},

	// Slideshow
	{ActionNextSlide, []string{"right", "l"}, "Next photo", ContextSlideshow},
	{ActionPrevSlide, []string{"left", "h"}, "Previous photo", ContextSlideshow},
	{ActionRandomSlide, []string{"r"}, "Random photo", ContextSlideshow},
	{ActionJumpStart, []string{"home", "g"}, "First photo", ContextSlideshow},
	{ActionJumpEnd, []string{"end", "G"}, "Last photo", ContextSlideshow},
	{ActionPlayPause, []string{" "}, "Play/pause", ContextSlideshow},
	{ActionCycleMode, []string{"m"}, "Cycle mode", ContextSlideshow},
	{ActionShuffle, []string{"s"}, "Shuffle photos", ContextSlideshow},
	{ActionNextTheme, []string{"t"}, "Next theme", ContextSlideshow},
	{ActionPrevTheme, []string{"T"}, "Previous theme", ContextSlideshow},
	{ActionToggleDark, []string{"D"}, "Toggle dark mode", ContextSlideshow},
	{ActionLonger, []string{"+", "="}, "Longer slide duration", ContextSlideshow},
	{ActionShorter, []string{"-"}, "Shorter slide duration", ContextSlideshow},
	{ActionSlower, []string{"]"}, "Slower transitions", ContextSlideshow},
	{ActionFaster, []string{"["}, "Faster transitions", ContextSlideshow},
	{ActionEditCaption, []string{"c"}, "Edit caption", ContextSlideshow},
	{ActionToggleCaption, []string{"C"}, "Show/hide caption", ContextSlideshow},

	// Photo list panel
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextPhotoList},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextPhotoList},
	{ActionJumpStart, []string{"home", "g"}, "First item", ContextPhotoList},
	{ActionJumpEnd, []string{"end", "G"}, "Last item", ContextPhotoList},
	{ActionMoveItemUp, []string{"K", "shift+up"}, "Move photo up", ContextPhotoList},
	{ActionMoveItemDown, []string{"J", "shift+down"}, "Move photo down", ContextPhotoList},
	{ActionSelect, []string{"enter"}, "Show photo", ContextPhotoList},
	{ActionDelete, []string{"d", "delete"}, "Remove photo", ContextPhotoList},
	{ActionUndo, []string{"u", "ctrl+z"}, "Undo", ContextPhotoList},
	{ActionRedo, []string{"ctrl+y"}, "Redo", ContextPhotoList},
	{ActionClose, []string{"esc"}, "Close panel", ContextPhotoList},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
