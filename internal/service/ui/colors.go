package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle keeps to ANSI 6 (Cyan) so headings read well on any terminal
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for arguments and usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black / Gray) keeps descriptions dimmer than commands
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// PromptStyle ANSI 5 (Magenta) marks the input prompt
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)

	// ConfidenceStyle ANSI 8 for the confidence footer under each answer
	ConfidenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)
