package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gathering/internal/config"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderFooter renders the footer with format: ─── <host> ─────── v<version> ─── followed by help text
func RenderFooter(width int, host, helpText string) string {
	version := fmt.Sprintf("v%s", config.Version)
	versionWidth := lipgloss.Width(version)

	maxHostWidth := width - versionWidth - FooterSeparatorMinWidth - FooterFixedChars*2
	host = Truncate(host, maxHostWidth)
	hostWidth := lipgloss.Width(host)

	separatorWidth := width - hostWidth - versionWidth - FooterFixedChars*2
	if separatorWidth < FooterSeparatorMinWidth {
		separatorWidth = FooterSeparatorMinWidth
	}

	line := RenderLine(3) + " " + MutedStyle.Render(host) + " " + RenderLine(separatorWidth) + " " + version + " " + RenderLine(3)
	help := HelpStyle.Render(helpText)

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, line, help))
}

// PadRight pads s with spaces to the given display width, counting wide runes as two cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Truncate shortens s to fit maxWidth display cells, ending with an ellipsis
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	return runewidth.Truncate(s, maxWidth, "…")
}
