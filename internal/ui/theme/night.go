package theme

import "github.com/charmbracelet/lipgloss"

var (
	Night   = lipgloss.Color("#1a1a2e")
	Card    = lipgloss.Color("#16213e")
	Text    = lipgloss.Color("#ffffff")
	Muted0  = lipgloss.Color("#a0a0a0")
	Dawn    = lipgloss.Color("#4a90e2")
	Sunrise = lipgloss.Color("#e74c3c")

	App = lipgloss.NewStyle().
		Foreground(Text).
		Padding(1, 2)

	Title    = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Subtitle = lipgloss.NewStyle().Foreground(Muted0)
	Section  = lipgloss.NewStyle().Foreground(Text).Bold(true).MarginBottom(1)
	Muted    = lipgloss.NewStyle().Foreground(Muted0)
	Empty    = lipgloss.NewStyle().Foreground(Muted0).Italic(true)
	Accent   = lipgloss.NewStyle().Foreground(Dawn).Bold(true)

	button = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true).
		Align(lipgloss.Center).
		Padding(1, 2)

	StartButton = button.Background(Dawn)
	StopButton  = button.Background(Sunrise)

	ActiveCard = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Dawn).
			Background(Card).
			Align(lipgloss.Center).
			Padding(1, 2)

	HistoryItem = lipgloss.NewStyle().
			Background(Card).
			Padding(0, 1).
			MarginBottom(1)

	Notice = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Dawn).
		Background(Card).
		Foreground(Text).
		Align(lipgloss.Center).
		Padding(1, 3)
)
