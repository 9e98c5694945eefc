package playerbar

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/llehouerou/slides/internal/ui"
	"github.com/llehouerou/slides/internal/ui/styles"
)

const (
	filledBlock = '━'
	emptyBlock  = '─'
)

// RenderProgressBar renders the advance-cycle bar with the active accent
// gradient. fraction is clamped to [0, 1].
func RenderProgressBar(fraction float64, width int) string {
	if width < ui.MinProgressBarWidth {
		return ""
	}
	fraction = min(max(fraction, 0), 1)

	t := styles.T()
	bar := progress.New(
		progress.WithGradient(string(t.Primary), string(t.Secondary)),
		progress.WithFillCharacters(filledBlock, emptyBlock),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = string(t.FgSubtle)
	return bar.ViewAs(fraction)
}
