package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#8524a6")
	colorRed       = lipgloss.Color("#FF5555")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorLightGray).
				Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)
)

const logo = `
  ██████╗ ██████╗ ██████╗ ██╗██╗   ██╗███████╗
 ██╔════╝██╔═══██╗██╔══██╗██║██║   ██║██╔════╝
 ██║     ██║   ██║██║  ██║██║██║   ██║█████╗
 ██║     ██║   ██║██║  ██║██║╚██╗ ██╔╝██╔══╝
 ╚██████╗╚██████╔╝██████╔╝██║ ╚████╔╝ ███████╗
  ╚═════╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝  ╚══════╝
`
