package cli

import (
	"github.com/charmbracelet/lipgloss"

	"gathering/internal/config"
)

// Headline - High-emphasis text for section headers
var headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C8A27A")).MarginTop(1)

// Title - Medium-emphasis text for command names
var titleMedium = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))

// Body - Main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
)

// Semantic styles - mapped to the typography scale
var (
	sectionHeader = headlineLarge.MarginBottom(1)
	commandName   = titleMedium
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C8A27A"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// usageLines lists the commands shown by help
var usageLines = [][2]string{
	{config.AppName, "Open the invitation deck"},
	{config.AppName + " serve", "Run the reply server"},
	{config.AppName + " init [--force] [--dry-run]", "Generate gathering.yaml"},
	{config.AppName + " version", "Show version"},
	{config.AppName + " --config <path>", "Use another configuration file"},
}

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderUsage renders the command overview
func RenderUsage() string {
	rows := make([]string, 0, len(usageLines))

	width := 0
	for _, line := range usageLines {
		width = max(width, lipgloss.Width(line[0]))
	}

	for _, line := range usageLines {
		name := commandName.Width(width).Render(line[0])
		rows = append(rows, bodyMedium.Render("  "+name+"  "+line[1]))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// RenderError renders a one-line error message
func RenderError(err error) string {
	return errorStyle.Render("Error:") + " " + err.Error()
}
