package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yourloops/basalviz/model"
)

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorOrange  = lipgloss.Color("#FFB86C")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle      = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle      = lipgloss.NewStyle().Foreground(colorWhite)
	critStyle       = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle         = lipgloss.NewStyle().Foreground(colorGreen)
	headerStyle     = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	helpStyle       = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle        = lipgloss.NewStyle().Foreground(colorGray)
	automatedStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	manualStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	borderStyle     = lipgloss.NewStyle().Foreground(colorOrange)
	autoBorderStyle = lipgloss.NewStyle().Foreground(colorMagenta)
)

func classStyle(c model.DeliveryClass) lipgloss.Style {
	if c == model.ClassAutomated {
		return automatedStyle
	}
	return manualStyle
}

func undeliveredStyle(automated bool) lipgloss.Style {
	if automated {
		return autoBorderStyle
	}
	return borderStyle
}
