package deck

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"gathering/internal/app/ui/components"
	"gathering/internal/app/ui/content"
	"gathering/internal/app/ui/transition"
)

// View renders the nav bar, the sliding sections and the footer
func (m *Model) View() string {
	if !m.ui.ready {
		return ""
	}

	width := m.ui.width
	height := max(m.ui.height-components.NavBarHeight-components.FooterHeight, components.MinViewportHeight)

	frames := make([]string, len(m.sections))
	for i := range m.sections {
		frames[i] = m.frame(i, width, height)
	}

	current := m.nav.Current()
	body := transition.Render(frames, width, height, m.slide.OffsetFor(current, width))

	footerText := components.Tip(current) + "  " + m.ui.help.View(m.keys)
	if m.ui.status != "" {
		footerText = m.ui.status
	}

	return m.zones.Scan(lipgloss.JoinVertical(
		lipgloss.Left,
		m.bar.View(width),
		body,
		components.RenderFooter(width, m.host, footerText),
	))
}

// frame returns the section at index, caching static sections per size
func (m *Model) frame(index, width, height int) string {
	section := m.sections[index]

	if section.ID == content.SectionForm {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.form.View(width))
	}

	cacheKey := fmt.Sprintf("%s:%dx%d", section.ID, width, height)
	if frame, ok := m.ui.frames[cacheKey]; ok {
		return frame
	}

	frame := m.content.Frame(section, width, height)
	m.ui.frames[cacheKey] = frame

	return frame
}
