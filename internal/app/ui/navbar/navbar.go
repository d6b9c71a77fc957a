package navbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"gathering/internal/app/navigation"
	"gathering/internal/app/registry"
	"gathering/internal/app/ui/components"
)

const buttonGap = 1

// Bar renders one clickable button per section and routes clicks to the navigator
type Bar struct {
	nav       navigation.Navigator
	sections  []registry.SectionDescriptor
	zones     *zone.Manager
	prefix    string
	indicator *components.Indicator
}

// New creates a nav bar for the registry; the indicator starts under the current section
func New(nav navigation.Navigator, reg *registry.Registry, zones *zone.Manager) *Bar {
	b := &Bar{
		nav:       navigation.Via(nav, navigation.ChannelNavBar),
		sections:  reg.All(),
		zones:     zones,
		prefix:    zones.NewPrefix(),
		indicator: components.NewIndicator(),
	}

	column, width := b.span(nav.Current())
	b.indicator.Jump(column, width)

	return b
}

// ZoneID returns the clickable zone id of the section button
func (b *Bar) ZoneID(id string) string {
	return b.prefix + id
}

// Follow retargets the indicator to the button of the section at index
func (b *Bar) Follow(index int) {
	column, width := b.span(index)
	b.indicator.MoveTo(column, width)
}

// Update advances the indicator animation by one frame
func (b *Bar) Update() {
	b.indicator.Update()
}

// Animating reports whether the indicator is still moving
func (b *Bar) Animating() bool {
	return !b.indicator.Settled()
}

// HandleClick navigates to the section whose button contains the mouse event
func (b *Bar) HandleClick(msg tea.MouseMsg) bool {
	for _, section := range b.sections {
		info := b.zones.Get(b.ZoneID(section.ID))
		if info == nil || !info.InBounds(msg) {
			continue
		}

		b.Select(section.ID)

		return true
	}

	return false
}

// Select behaves as a click on the button of the section id
func (b *Bar) Select(id string) {
	b.nav.GoToID(id)
}

// View renders the buttons and the indicator line for the given width
func (b *Bar) View(width int) string {
	current := b.nav.Current()
	buttons := make([]string, 0, len(b.sections))

	for _, section := range b.sections {
		style := components.NavButtonStyle
		if section.Ordinal == current {
			style = components.NavButtonActiveStyle
		}

		buttons = append(buttons, b.zones.Mark(b.ZoneID(section.ID), style.Render(label(section))))
	}

	row := strings.Join(buttons, strings.Repeat(" ", buttonGap))
	row = lipgloss.PlaceHorizontal(width, lipgloss.Left, row)

	return lipgloss.JoinVertical(lipgloss.Left, row, b.indicator.Render(width, components.IndicatorStyle))
}

// span returns the starting column and width of the button at index
func (b *Bar) span(index int) (int, int) {
	column := 0

	for i, section := range b.sections {
		width := runewidth.StringWidth(label(section))
		if i == index {
			return column, width
		}

		column += width + buttonGap
	}

	return 0, 0
}

func label(section registry.SectionDescriptor) string {
	padding := strings.Repeat(" ", components.NavButtonPadding)
	return padding + section.Label + padding
}
