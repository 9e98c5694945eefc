package photoview

import (
	"os"
	"strings"
)

// EnvProtocol overrides protocol detection: "kitty", "sixel" or "none".
const EnvProtocol = "SLIDES_IMAGE_PROTOCOL"

// Detect returns the best available ImageProtocol for the current terminal,
// or nil if photos can only be shown as text placards.
func Detect() ImageProtocol {
	switch os.Getenv(EnvProtocol) {
	case "kitty":
		return KittyProtocol{}
	case "sixel":
		return NewSixelProtocol()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return KittyProtocol{}
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return nil
}

// IsKittySupported checks the environment for a terminal speaking the Kitty
// graphics protocol.
func IsKittySupported() bool {
	// Contour can inherit GHOSTTY_RESOURCES_DIR and friends from a parent
	// terminal but does not speak Kitty graphics.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM") == "xterm-kitty" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; graphics arrived in 22.04
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks the environment for a sixel-capable terminal.
// Kitty is checked first, so xterm-kitty never reaches the xterm rule.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")

	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	if term == "foot" || term == "foot-extra" {
		return true
	}
	// xterm only has sixel when built with it, but it is the common case
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
