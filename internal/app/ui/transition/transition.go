package transition

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DefaultDuration is the length of one slide between sections
const DefaultDuration = 600 * time.Millisecond

// Offset returns the horizontal offset in cells of a slide from one index to another after elapsed time.
// The result is a pure function of its arguments; a settled slide is exactly to*width.
func Offset(from, to float64, width int, elapsed, duration time.Duration, curve Curve) float64 {
	target := to * float64(width)

	if duration <= 0 || elapsed >= duration {
		return target
	}

	origin := from * float64(width)
	progress := curve.At(float64(elapsed) / float64(duration))

	return origin + (target-origin)*progress
}

// Slide tracks the running animation between two sections; it never owns the current index
type Slide struct {
	duration time.Duration
	curve    Curve
	now      func() time.Time
	origin   float64
	target   int
	started  time.Time
	running  bool
}

// NewSlide creates a slide settled on the first section; a nil clock means time.Now
func NewSlide(duration time.Duration, now func() time.Time) *Slide {
	if duration <= 0 {
		duration = DefaultDuration
	}

	if now == nil {
		now = time.Now
	}

	return &Slide{
		duration: duration,
		curve:    EaseOut,
		now:      now,
	}
}

// Start animates towards the index, continuing from wherever a running slide currently is
func (s *Slide) Start(to int) {
	s.origin = s.position()
	s.target = to
	s.started = s.now()
	s.running = true
}

// Settle stops any running slide on the index
func (s *Slide) Settle(index int) {
	s.origin = float64(index)
	s.target = index
	s.running = false
}

// Running reports whether a slide is in progress, finishing it once its duration elapsed
func (s *Slide) Running() bool {
	if s.running && s.now().Sub(s.started) >= s.duration {
		s.Settle(s.target)
	}

	return s.running
}

// OffsetFor returns the current offset in cells for a viewport of the given width showing index
func (s *Slide) OffsetFor(index, width int) int {
	if index != s.target {
		s.Settle(index)
	}

	if !s.running {
		return index * width
	}

	elapsed := s.now().Sub(s.started)

	return int(math.Round(Offset(s.origin, float64(s.target), width, elapsed, s.duration, s.curve)))
}

// position returns the fractional section index currently on screen
func (s *Slide) position() float64 {
	if !s.running {
		return float64(s.target)
	}

	elapsed := s.now().Sub(s.started)

	return Offset(s.origin, float64(s.target), 1, elapsed, s.duration, s.curve)
}

// Render lays the frames out end-to-end, each exactly width cells wide and height lines tall,
// and returns the width-wide window starting at offset
func Render(frames []string, width, height, offset int) string {
	if width <= 0 || height <= 0 || len(frames) == 0 {
		return ""
	}

	frame := lipgloss.NewStyle().Width(width).MaxWidth(width).Height(height).MaxHeight(height)

	rows := make([]strings.Builder, height)

	for _, content := range frames {
		lines := strings.Split(frame.Render(content), "\n")

		for y := range rows {
			line := ""
			if y < len(lines) {
				line = lines[y]
			}

			rows[y].WriteString(pad(line, width))
		}
	}

	maxOffset := (len(frames) - 1) * width
	offset = max(0, min(offset, maxOffset))

	out := make([]string, height)
	for y := range rows {
		out[y] = ansi.Cut(rows[y].String(), offset, offset+width)
	}

	return strings.Join(out, "\n")
}

func pad(line string, width int) string {
	w := ansi.StringWidth(line)
	if w >= width {
		return ansi.Truncate(line, width, "")
	}

	return line + strings.Repeat(" ", width-w)
}
