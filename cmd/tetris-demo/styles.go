package main

import "github.com/charmbracelet/lipgloss"

var kindColors = map[byte]lipgloss.Color{
	'I': lipgloss.Color("51"),  // cyan
	'O': lipgloss.Color("220"), // yellow
	'J': lipgloss.Color("33"),  // blue
	'L': lipgloss.Color("208"), // orange
	'S': lipgloss.Color("40"),  // green
	'Z': lipgloss.Color("196"), // red
	'T': lipgloss.Color("129"), // purple
	'G': lipgloss.Color("240"), // garbage, gray
}

var (
	boardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("242")).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("242")).
			Padding(0, 1).
			Width(14)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Bold(true)

	hudStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	comboStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)

	b2bStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	garbageMeterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)

	newHighScoreStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("220"))
)

func cellStyle(b byte) lipgloss.Style {
	if c, ok := kindColors[b]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle()
}
