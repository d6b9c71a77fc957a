package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across the deck views
var (
	// TitleStyle for section titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(HeadingColor)

	// SubtitleStyle for kicker lines above titles
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Italic(true)

	// MutedStyle for secondary copy
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// NavButtonStyle for inactive nav buttons
	NavButtonStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// NavButtonActiveStyle for the button of the visible section
	NavButtonActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	// IndicatorStyle for the sliding marker under the active button
	IndicatorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// OptionStyle for unselected choice chips
	OptionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// OptionSelectedStyle for the chosen chip
	OptionSelectedStyle = OptionStyle.
				BorderForeground(ColorPrimary).
				Foreground(ColorPrimary).
				Background(BgSelection)

	// ButtonStyle for the submit button
	ButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(ColorPrimary).
			Padding(0, 3)

	// ButtonDisabledStyle for the submit button while sending
	ButtonDisabledStyle = ButtonStyle.
				Background(ColorBorder)

	// SuccessStyle for confirmation messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// SendingStyle for in-flight status
	SendingStyle = lipgloss.NewStyle().
			Foreground(ColorSending)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	// FooterStyle for the bottom line
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)
