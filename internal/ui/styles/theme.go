// Package styles holds the color palettes and pre-built lipgloss styles.
// The active palette follows the slideshow theme and the dark mode flag.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slides/internal/theme"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Accent colors, chosen by the slideshow theme
	Primary   lipgloss.Color // focused items, active states
	Secondary lipgloss.Color // gradient end, secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	Dark bool

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Active  lipgloss.Style // current photo, selected command
	Cursor  lipgloss.Style // cursor background highlight
	Caption lipgloss.Style
	Key     lipgloss.Style // key hints
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

type accent struct {
	primary, secondary lipgloss.Color
}

var accents = map[theme.ID]accent{
	theme.Direct:     {"#a78bfa", "#f1a208"},
	theme.Horizontal: {"#38bdf8", "#f472b6"},
	theme.Vertical:   {"#f1a208", "#ef4444"},
	theme.Fade:       {"#34d399", "#60a5fa"},
}

var darkBase = Theme{
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),
	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),
	Border:   lipgloss.Color("#585858"),
	Success:  lipgloss.Color("#42b883"),
	Error:    lipgloss.Color("#ff5555"),
	Warning:  lipgloss.Color("#f1a208"),
	Dark:     true,
}

var lightBase = Theme{
	FgBase:   lipgloss.Color("#2a2a2a"),
	FgMuted:  lipgloss.Color("#5f5f5f"),
	FgSubtle: lipgloss.Color("#9e9e9e"),
	BgBase:   lipgloss.Color("#f5f5f5"),
	BgCursor: lipgloss.Color("#dadada"),
	Border:   lipgloss.Color("#9e9e9e"),
	Success:  lipgloss.Color("#2e8b57"),
	Error:    lipgloss.Color("#c62828"),
	Warning:  lipgloss.Color("#b26a00"),
}

var current = build(theme.Default(), true)

// T returns the active theme.
func T() *Theme {
	return current
}

// Use switches the active palette. Unknown theme ids use the default accent.
func Use(id theme.ID, dark bool) {
	current = build(id, dark)
}

func build(id theme.ID, dark bool) *Theme {
	t := lightBase
	if dark {
		t = darkBase
	}
	a, ok := accents[id]
	if !ok {
		a = accents[theme.Default()]
	}
	t.Primary = a.primary
	t.Secondary = a.secondary
	t.BorderFocus = a.primary
	t.styles = nil
	return &t
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// Panel returns a rounded panel style whose border follows focus.
func (t *Theme) Panel(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Caption: base.Italic(true),
		Key:     lipgloss.NewStyle().Foreground(t.Primary),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
