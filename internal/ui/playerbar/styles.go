package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/slides/internal/ui/styles"
)

func statusStyle(playing bool) lipgloss.Style {
	if playing {
		return styles.T().S().Active
	}
	return styles.T().S().Muted
}

func nameStyle() lipgloss.Style {
	return styles.T().S().Title
}

func metaStyle() lipgloss.Style {
	return styles.T().S().Muted
}
