// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// SplitLines splits output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// MaxLineWidth returns the display width of the widest line.
func MaxLineWidth(output string) int {
	w := 0
	for line := range strings.SplitSeq(output, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// AssertContains returns an error message if output doesn't contain substr,
// or empty string if it does.
func AssertContains(output, substr string) string {
	if !strings.Contains(StripANSI(output), substr) {
		return "expected output to contain " + substr
	}
	return ""
}

// AssertNotContains returns an error message if output contains substr,
// or empty string if it doesn't.
func AssertNotContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return "expected output to NOT contain " + substr
	}
	return ""
}

var namedKeys = map[string]tea.KeyType{
	"enter":      tea.KeyEnter,
	"esc":        tea.KeyEscape,
	"tab":        tea.KeyTab,
	"backspace":  tea.KeyBackspace,
	"delete":     tea.KeyDelete,
	"up":         tea.KeyUp,
	"down":       tea.KeyDown,
	"left":       tea.KeyLeft,
	"right":      tea.KeyRight,
	"home":       tea.KeyHome,
	"end":        tea.KeyEnd,
	"shift+up":   tea.KeyShiftUp,
	"shift+down": tea.KeyShiftDown,
	"ctrl+c":     tea.KeyCtrlC,
	"ctrl+k":     tea.KeyCtrlK,
	"ctrl+n":     tea.KeyCtrlN,
	"ctrl+p":     tea.KeyCtrlP,
	"ctrl+r":     tea.KeyCtrlR,
	"ctrl+y":     tea.KeyCtrlY,
	"ctrl+z":     tea.KeyCtrlZ,
}

// Key builds the tea.KeyMsg whose String() is key. Names such as "enter",
// "esc", "shift+up" or "ctrl+z" map to special keys, " " to the space key,
// anything else is sent as runes.
func Key(key string) tea.KeyMsg {
	if kt, ok := namedKeys[key]; ok {
		return tea.KeyMsg{Type: kt}
	}
	if key == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}
