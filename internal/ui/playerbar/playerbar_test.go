package playerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/slides/internal/icons"
	"github.com/llehouerou/slides/internal/slideshow"
	"github.com/llehouerou/slides/internal/ui/testutil"
)

func TestRender_StatusLine(t *testing.T) {
	icons.Init("unicode")
	out := Render(State{
		Playing:     true,
		Mode:        slideshow.ModeAuto,
		Name:        "ocean-waves.jpg",
		Index:       2,
		Total:       8,
		DurationSec: 5,
		SpeedMS:     600,
		Fraction:    0.5,
	}, 100)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	status := testutil.StripANSI(lines[0])
	assert.Contains(t, status, icons.PlayState(true)+" "+slideshow.ModeAuto.Label())
	assert.Contains(t, status, "ocean-waves.jpg")
	assert.Contains(t, status, "3/8 · 5s · 600ms")
	assert.Equal(t, 100, lipgloss.Width(lines[0]))
	assert.Equal(t, 100, lipgloss.Width(lines[1]))
}

func TestRender_ManualModeHasNoBar(t *testing.T) {
	out := Render(State{Mode: slideshow.ModeManual, DurationSec: 5}, 80)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Empty(t, lines[1])
	assert.Contains(t, testutil.StripANSI(lines[0]), "No photos")
}

func TestRender_TruncatesLongNames(t *testing.T) {
	out := Render(State{
		Mode:        slideshow.ModeRandom,
		Name:        strings.Repeat("very-long-photo-name-", 10) + ".jpg",
		Index:       0,
		Total:       1,
		DurationSec: 30,
	}, 60)
	status := strings.Split(out, "\n")[0]
	assert.LessOrEqual(t, lipgloss.Width(status), 60)
	assert.Contains(t, testutil.StripANSI(status), "…")
}

func TestRender_ZeroWidth(t *testing.T) {
	assert.Empty(t, Render(State{}, 0))
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		width    int
		wantFull int
	}{
		{"empty", 0, 20, 0},
		{"half", 0.5, 20, 10},
		{"full", 1, 20, 20},
		{"clamped above", 1.5, 10, 10},
		{"clamped below", -0.2, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := testutil.StripANSI(RenderProgressBar(tt.fraction, tt.width))
			assert.Equal(t, tt.width, lipgloss.Width(bar))
			assert.Equal(t, tt.wantFull, strings.Count(bar, string(filledBlock)))
		})
	}
}

func TestRenderProgressBar_TooNarrow(t *testing.T) {
	assert.Empty(t, RenderProgressBar(0.5, 3))
}
