package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the deck with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#C8A27A") // Champagne gold - accents and the active section
	FgMuted   = lipgloss.Color("7")       // Light gray - secondary copy
	FgBorder  = lipgloss.Color("8")       // Gray - separators and help text

	// Background colors
	BgSelection = lipgloss.Color("236") // Dark gray - chosen option background

	// Status colors - reply form states
	FgStatusSuccess = lipgloss.Color("10") // Green - reply sent
	FgStatusWarning = lipgloss.Color("11") // Yellow - sending
	FgStatusError   = lipgloss.Color("9")  // Red - reply failed
)

// Semantic aliases used by the views
var (
	ColorPrimary = FgPrimary
	ColorMuted   = FgMuted
	ColorBorder  = FgBorder
	ColorSuccess = FgStatusSuccess
	ColorSending = FgStatusWarning
	ColorFailed  = FgStatusError
)

// SeparatorColor is the adaptive color for separator lines
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// HeadingColor is the adaptive color for section headings
var HeadingColor = lipgloss.AdaptiveColor{Light: "#1f1f1f", Dark: "#f5f0e8"}
