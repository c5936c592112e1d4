package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/iamasit07/align4/internal/domain"
)

var (
	ColorRed    = lipgloss.Color("#dc2626")
	ColorYellow = lipgloss.Color("#facc15")
	ColorBoard  = lipgloss.Color("#1d4ed8")
	ColorDimmed = lipgloss.Color("#6b7280")
	ColorBright = lipgloss.Color("#f9fafb")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorBright)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBoard).Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Foreground(ColorDimmed)
	noticeStyle = lipgloss.NewStyle().Foreground(ColorDimmed).Italic(true)
	statusStyle = lipgloss.NewStyle().Bold(true)
)

func playerColor(p domain.Cell) lipgloss.Color {
	if p == domain.PlayerB {
		return ColorYellow
	}
	return ColorRed
}

func playerStyle(p domain.Cell) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(playerColor(p))
}
