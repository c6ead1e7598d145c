package chat

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#333333")).
			MarginBottom(1)

	userBubble = lipgloss.NewStyle().
			Background(lipgloss.Color("#007bff")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1)

	botBubble = lipgloss.NewStyle().
			Background(lipgloss.Color("#f1f1f1")).
			Foreground(lipgloss.Color("#333333")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#007bff")).
			Padding(0, 2)

	busyStyle = buttonStyle.Background(lipgloss.Color("#6c757d"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)
