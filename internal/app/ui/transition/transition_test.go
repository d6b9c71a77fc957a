package transition

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func Test_Curve_At(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		expected float64
	}{
		{name: "start", t: 0, expected: 0},
		{name: "end", t: 1, expected: 1},
		{name: "below range", t: -1, expected: 0},
		{name: "above range", t: 2, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EaseOut.At(tt.t), 1e-9)
		})
	}
}

func Test_Curve_EaseOutShape(t *testing.T) {
	previous := 0.0

	for i := 1; i < 100; i++ {
		v := EaseOut.At(float64(i) / 100)

		assert.GreaterOrEqual(t, v, previous)
		assert.LessOrEqual(t, v, 1.0)

		previous = v
	}

	assert.Greater(t, EaseOut.At(0.5), 0.5)
	assert.Greater(t, EaseOut.At(0.25), 0.5)
}

func Test_Curve_Linear(t *testing.T) {
	linear := NewCurve(0, 0, 1, 1)

	for _, x := range []float64{0.1, 0.3, 0.5, 0.9} {
		assert.InDelta(t, x, linear.At(x), 1e-5)
	}
}

func Test_Offset(t *testing.T) {
	tests := []struct {
		name     string
		from     float64
		to       float64
		width    int
		elapsed  time.Duration
		expected float64
	}{
		{name: "not started", from: 0, to: 1, width: 80, elapsed: 0, expected: 0},
		{name: "finished", from: 0, to: 1, width: 80, elapsed: DefaultDuration, expected: 80},
		{name: "past the end", from: 2, to: 1, width: 80, elapsed: time.Hour, expected: 80},
		{name: "same index", from: 3, to: 3, width: 40, elapsed: DefaultDuration / 2, expected: 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Offset(tt.from, tt.to, tt.width, tt.elapsed, DefaultDuration, EaseOut)
			assert.InDelta(t, tt.expected, result, 1e-6)
		})
	}
}

func Test_Offset_Midway(t *testing.T) {
	result := Offset(0, 2, 100, DefaultDuration/2, DefaultDuration, EaseOut)

	assert.Greater(t, result, 100.0)
	assert.Less(t, result, 200.0)
}

func Test_Slide(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewSlide(DefaultDuration, clock.Now)

	assert.False(t, s.Running())
	assert.Equal(t, 0, s.OffsetFor(0, 80))

	s.Start(1)
	assert.True(t, s.Running())
	assert.Equal(t, 0, s.OffsetFor(1, 80))

	clock.Advance(DefaultDuration / 2)
	midway := s.OffsetFor(1, 80)
	assert.Greater(t, midway, 40)
	assert.Less(t, midway, 80)

	clock.Advance(DefaultDuration)
	assert.False(t, s.Running())
	assert.Equal(t, 80, s.OffsetFor(1, 80))
}

func Test_Slide_Retarget(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewSlide(DefaultDuration, clock.Now)

	s.Start(2)
	clock.Advance(DefaultDuration / 2)
	midway := s.OffsetFor(2, 10)

	s.Start(0)
	assert.Equal(t, midway, s.OffsetFor(0, 10))

	clock.Advance(DefaultDuration)
	assert.Equal(t, 0, s.OffsetFor(0, 10))
}

func Test_Slide_SettlesOnUnexpectedIndex(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	s := NewSlide(0, clock.Now)

	s.Start(1)
	assert.Equal(t, 240, s.OffsetFor(3, 80))
	assert.False(t, s.Running())
}

func Test_Render(t *testing.T) {
	frames := []string{"first", "second", "third"}

	t.Run("each offset shows one frame", func(t *testing.T) {
		for i, frame := range frames {
			out := ansi.Strip(Render(frames, 10, 2, i*10))
			lines := strings.Split(out, "\n")

			assert.Len(t, lines, 2)
			assert.Equal(t, frame+strings.Repeat(" ", 10-len(frame)), lines[0])
			assert.Equal(t, strings.Repeat(" ", 10), lines[1])
		}
	})

	t.Run("in between shows both frames", func(t *testing.T) {
		out := ansi.Strip(Render(frames, 10, 1, 5))

		assert.Equal(t, "     secon", out)
	})

	t.Run("offset is clamped", func(t *testing.T) {
		assert.Equal(t, Render(frames, 10, 1, 0), Render(frames, 10, 1, -50))
		assert.Equal(t, Render(frames, 10, 1, 20), Render(frames, 10, 1, 1000))
	})

	t.Run("settled output is stable", func(t *testing.T) {
		first := Render(frames, 12, 3, 12)
		for range 5 {
			assert.Equal(t, first, Render(frames, 12, 3, 12))
		}
	})

	t.Run("degenerate sizes", func(t *testing.T) {
		assert.Empty(t, Render(frames, 0, 3, 0))
		assert.Empty(t, Render(frames, 10, 0, 0))
		assert.Empty(t, Render(nil, 10, 3, 0))
	})
}
