package monitor

import "github.com/charmbracelet/lipgloss"

// Frame attribute styles: bold for titles and headers, faint for borders.
var (
	NormalStyle = lipgloss.NewStyle()

	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Faint(true)
)

func styleFor(attr Attr) lipgloss.Style {
	switch attr {
	case AttrBold:
		return BoldStyle
	case AttrDim:
		return DimStyle
	default:
		return NormalStyle
	}
}
