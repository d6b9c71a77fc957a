package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains gesture hints displayed in the footer, one per section in rotation
var Tips = []string{
	tipDesc("Drag ") + tipKey("left or right") + tipDesc(" to change section"),
	tipDesc("Scroll the ") + tipKey("wheel") + tipDesc(" to step through sections"),
	tipDesc("Click a ") + tipKey("tab") + tipDesc(" to jump straight to it"),
	tipDesc("Press ") + tipKey("y") + tipDesc(" to copy the event details"),
}

// Tip returns the hint for the given section index
func Tip(index int) string {
	if index < 0 {
		index = -index
	}

	return Tips[index%len(Tips)]
}
