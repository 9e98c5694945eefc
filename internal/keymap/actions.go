// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit          Action = "quit"
	ActionPalette       Action = "palette"
	ActionHelp          Action = "help"
	ActionSettings      Action = "settings"
	ActionTogglePhotos  Action = "toggle_photos"
	ActionSwitchFocus   Action = "switch_focus"
	ActionLoadSamples   Action = "load_samples"
	ActionClearPhotos   Action = "clear_photos"
	ActionResetSettings Action = "reset_settings"

	// Slideshow actions
	ActionNextSlide     Action = "next_slide"
	ActionPrevSlide     Action = "prev_slide"
	ActionRandomSlide   Action = "random_slide"
	ActionPlayPause     Action = "play_pause"
	ActionCycleMode     Action = "cycle_mode"
	ActionNextTheme     Action = "next_theme"
	ActionPrevTheme     Action = "prev_theme"
	ActionToggleDark    Action = "toggle_dark"
	ActionShuffle       Action = "shuffle"
	ActionLonger        Action = "longer"  // +/= - slide duration up
	ActionShorter       Action = "shorter" // - - slide duration down
	ActionSlower        Action = "slower"  // ] - transition speed up
	ActionFaster        Action = "faster"  // [ - transition speed down
	ActionEditCaption   Action = "edit_caption"
	ActionToggleCaption Action = "toggle_caption"

	// Generic contextual actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start" // home - first slide or first list item
	ActionJumpEnd   Action = "jump_end"   // end - last slide or last list item
	ActionSelect    Action = "select"     // enter - show the selected photo
	ActionDelete    Action = "delete"     // d/delete - remove the selected photo
	ActionClose     Action = "close"      // esc - close the focused panel

	// Photo list reordering
	ActionMoveItemUp   Action = "move_item_up"   // shift+k
	ActionMoveItemDown Action = "move_item_down" // shift+j
	ActionUndo         Action = "undo"           // ctrl+z
	ActionRedo         Action = "redo"           // ctrl+y
)
