package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	indicatorGlyph = "━"

	// Spring physics parameters
	indicatorAngularFrequency = 7.0 // Spring stiffness (higher = faster response)
	indicatorDampingRatio     = 0.8 // Slightly underdamped for a soft overshoot

	// Distance and speed below which the spring is considered settled
	indicatorRestDistance = 0.05
	indicatorRestVelocity = 0.05
)

// Indicator is the marker that slides under the active nav button using spring physics
type Indicator struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	width    int
}

// NewIndicator creates an indicator resting at column zero
func NewIndicator() *Indicator {
	return &Indicator{
		spring: harmonica.NewSpring(harmonica.FPS(UITicksPerSecond), indicatorAngularFrequency, indicatorDampingRatio),
	}
}

// MoveTo sets the column and width the indicator should settle on
func (i *Indicator) MoveTo(column, width int) {
	i.target = float64(column)
	i.width = width
}

// Jump places the indicator at the column without animating
func (i *Indicator) Jump(column, width int) {
	i.MoveTo(column, width)
	i.position = i.target
	i.velocity = 0
}

// Update advances the spring by one frame
func (i *Indicator) Update() {
	if i.Settled() {
		i.position = i.target
		i.velocity = 0

		return
	}

	i.position, i.velocity = i.spring.Update(i.position, i.velocity, i.target)
}

// Settled reports whether the indicator reached its target
func (i *Indicator) Settled() bool {
	return math.Abs(i.position-i.target) < indicatorRestDistance && math.Abs(i.velocity) < indicatorRestVelocity
}

// Column returns the rounded column the indicator currently starts at
func (i *Indicator) Column() int {
	column := int(math.Round(i.position))
	if column < 0 {
		return 0
	}

	return column
}

// Render returns a line of the given width with the indicator drawn at its current column
func (i *Indicator) Render(lineWidth int, style lipgloss.Style) string {
	if lineWidth <= 0 {
		return ""
	}

	column := min(i.Column(), lineWidth)
	width := max(min(i.width, lineWidth-column), 0)

	return strings.Repeat(" ", column) + style.Render(strings.Repeat(indicatorGlyph, width)) + strings.Repeat(" ", lineWidth-column-width)
}
