package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gathering/internal/app/registry"
	"gathering/internal/app/ui/components"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// Built-in section ids with their own layout
const (
	SectionTop      = "top"
	SectionInfo     = "info"
	SectionSchedule = "schedule"
	SectionForm     = "form"
)

// Glamour styles
const (
	DarkStyle  = "dark"
	PlainStyle = "notty"
)

const defaultInfoBody = `## Details

- **Date** %s
- **Meeting point** We pick everyone up around the couple's home, in turns
- **Venue** A restaurant in the Akashi area

Reply from the last section so we know when to pick you up.`

// Renderer produces the static frame of each section
type Renderer struct {
	event     config.Event
	style     string
	renderers map[int]*glamour.TermRenderer
	log       logger.Logger
}

// NewRenderer creates a section renderer using the glamour style for markdown bodies
func NewRenderer(event config.Event, style string, log logger.Logger) *Renderer {
	return &Renderer{
		event:     event,
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		log:       log.WithComponent("DECK"),
	}
}

// SetEvent replaces the event details shown by the sections
func (r *Renderer) SetEvent(event config.Event) {
	r.event = event
}

// Frame renders the section to fit width cells, centered vertically within height lines
func (r *Renderer) Frame(section registry.SectionDescriptor, width, height int) string {
	inner := min(width-components.ContentPadding*2, components.MaxContentWidth)
	if inner <= 0 {
		return ""
	}

	var body string

	switch section.ID {
	case SectionTop:
		body = r.top(section, inner)
	case SectionInfo:
		body = r.markdown(section, fmt.Sprintf(defaultInfoBody, r.event.Date), inner)
	case SectionSchedule:
		body = r.schedule(section, inner)
	default:
		body = r.markdown(section, "", inner)
	}

	body = lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(body)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// Summary returns the plain text event summary used for the clipboard
func (r *Renderer) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n%s\n", r.event.Title, r.event.Subtitle, r.event.Date)

	for _, slot := range r.event.Schedule {
		fmt.Fprintf(&b, "%s %s\n", slot.Time, slot.Text)
	}

	fmt.Fprintf(&b, "%s\n", r.event.Host)

	return b.String()
}

func (r *Renderer) top(section registry.SectionDescriptor, width int) string {
	title := r.event.Title
	if section.Title != "" {
		title = section.Title
	}

	lines := []string{
		components.SubtitleStyle.Render(r.event.Subtitle),
		"",
		components.TitleStyle.Render(title),
		"",
		components.MutedStyle.Render(r.event.Date),
	}

	if section.Body != "" {
		lines = append(lines, "", components.MutedStyle.Width(width).Align(lipgloss.Center).Render(section.Body))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (r *Renderer) schedule(section registry.SectionDescriptor, width int) string {
	title := "Tentative schedule"
	if section.Title != "" {
		title = section.Title
	}

	timeWidth := 0
	for _, slot := range r.event.Schedule {
		timeWidth = max(timeWidth, runewidth.StringWidth(slot.Time))
	}

	textWidth := max(width-timeWidth-3, 1)
	rows := []string{components.TitleStyle.Render(title), ""}

	for i, slot := range r.event.Schedule {
		marker := "●"
		if i == len(r.event.Schedule)-1 {
			marker = "○"
		}

		text := components.Truncate(slot.Text, textWidth)
		rows = append(rows, fmt.Sprintf("%s %s %s",
			components.SubtitleStyle.Render(components.PadRight(slot.Time, timeWidth)),
			components.IndicatorStyle.Render(marker),
			text,
		))
	}

	if section.Body != "" {
		rows = append(rows, "", components.MutedStyle.Render(section.Body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// markdown renders the section body, or the fallback when the section has none, through glamour
func (r *Renderer) markdown(section registry.SectionDescriptor, fallback string, width int) string {
	source := section.Body
	if source == "" {
		source = fallback
	}

	if section.Title != "" {
		source = "# " + section.Title + "\n\n" + source
	}

	if strings.TrimSpace(source) == "" {
		return components.TitleStyle.Render(section.Label)
	}

	tr, err := r.renderer(width)
	if err != nil {
		r.log.Warn().Err(err).Msg("Failed to create markdown renderer")
		return source
	}

	out, err := tr.Render(source)
	if err != nil {
		r.log.Warn().Err(err).Msgf("Failed to render section '%s'", section.ID)
		return source
	}

	return strings.Trim(out, "\n")
}

func (r *Renderer) renderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	r.renderers[width] = tr

	return tr, nil
}
