package components

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func Test_RenderLine(t *testing.T) {
	assert.Equal(t, "───", ansi.Strip(RenderLine(3)))
	assert.Empty(t, ansi.Strip(RenderLine(-1)))
}

func Test_RenderFooter(t *testing.T) {
	t.Run("renders host and version", func(t *testing.T) {
		result := ansi.Strip(RenderFooter(60, "committee", "y copy"))

		assert.Contains(t, result, "committee")
		assert.Contains(t, result, "v0.3.0")
		assert.Contains(t, result, "y copy")
	})

	t.Run("handles narrow widths", func(t *testing.T) {
		result := RenderFooter(5, "a very long host name", "")

		assert.NotEmpty(t, result)
	})
}

func Test_PadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		expect string
	}{
		{name: "ascii", input: "Top", width: 6, expect: "Top   "},
		{name: "wide runes", input: "日程", width: 6, expect: "日程  "},
		{name: "already wide enough", input: "Schedule", width: 4, expect: "Schedule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, PadRight(tt.input, tt.width))
		})
	}
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expect   string
	}{
		{name: "fits", input: "hello", maxWidth: 10, expect: "hello"},
		{name: "exact", input: "hello", maxWidth: 5, expect: "hello"},
		{name: "ascii", input: "hello world", maxWidth: 6, expect: "hello…"},
		{name: "zero width", input: "hello", maxWidth: 0, expect: ""},
		{name: "wide runes", input: "角南夫妻お祝い", maxWidth: 5, expect: "角南…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Truncate(tt.input, tt.maxWidth))
		})
	}
}
