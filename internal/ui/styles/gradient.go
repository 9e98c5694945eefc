package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with the active accent gradient.
func (t *Theme) Gradient(text string, bold bool) string {
	return applyGradient(text, bold, t.Primary, t.Secondary)
}

// Dim renders text in a color blended from the foreground toward the
// background. level 0 is the plain foreground, 1 is invisible on the
// background. Used to draw fade-in and fade-out frames.
func (t *Theme) Dim(text string, level float64) string {
	level = min(max(level, 0), 1)
	c := blend(t.FgBase, t.BgBase, level)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorToHex(c))).Render(text)
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		style := lipgloss.NewStyle().Foreground(from).Bold(bold)
		return style.Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorToHex(colors[i]))).
			Bold(bold)
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// blendColors returns size colors blended in HCL space between from and to.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	if size < 2 {
		return []color.Color{lipglossToColor(from)}
	}

	colors := make([]color.Color, size)
	for i := range size {
		colors[i] = blend(from, to, float64(i)/float64(size-1))
	}
	return colors
}

func blend(from, to lipgloss.Color, t float64) colorful.Color {
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return c1.BlendHcl(c2, t).Clamped()
}

// lipglossToColor converts a hex lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// ANSI palette indices have no RGB value here
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return colorful.Color{
		R: float64(r) / 65535.0,
		G: float64(g) / 65535.0,
		B: float64(b) / 65535.0,
	}.Hex()
}
