package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	markerFillColor        = "#d4b896"
	markerStrokeColor      = "#b8936d"
	markerCoreColor        = "#a0855b"
)

var (
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(markerFillColor))

	rowSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(rowSelectedBGColor)).
				Foreground(lipgloss.Color(rowSelectedTextFGColor))

	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	focusStyle = tableStyle.BorderForeground(lipgloss.Color(markerStrokeColor))

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(rowTextFGColor))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	countStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(markerStrokeColor))

	yearActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))
	yearInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)

	markerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(markerFillColor))
	markerFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(markerCoreColor)).Background(lipgloss.Color(markerFillColor)).Bold(true)

	popupTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(markerFillColor))
	popupBodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))

	errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#666666"))
	errorBodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)
