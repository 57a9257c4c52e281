package tui

import "github.com/charmbracelet/lipgloss"

// Colors used by the grid.
var (
	ColorHeaderBg = lipgloss.Color("#2089DC")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDayBg    = lipgloss.Color("#FFFFE0")
	ColorBox      = lipgloss.Color("#D3D3D3")
	ColorTarget   = lipgloss.Color("#EEEEEE")
	ColorActive   = lipgloss.Color("#808080")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorGray     = lipgloss.Color("#666666")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite).
			Background(ColorHeaderBg).
			Padding(0, 1)

	DayLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(5).
			Align(lipgloss.Right).
			Foreground(lipgloss.Color("#000000")).
			Background(ColorDayBg)

	BoxStyle    = lipgloss.NewStyle().Foreground(ColorBox)
	TargetStyle = lipgloss.NewStyle().Foreground(ColorTarget)
	ActiveStyle = lipgloss.NewStyle().Foreground(ColorActive).Bold(true)

	WeightStyle = lipgloss.NewStyle().
			Width(7).
			Align(lipgloss.Right)

	CommentStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SelectedStyle = lipgloss.NewStyle().
			Reverse(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
