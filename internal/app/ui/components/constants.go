package components

import "time"

// UI timing constants
const (
	// UITickInterval is the frame rate of running animations
	UITickInterval = 16 * time.Millisecond

	// UITicksPerSecond is the derived FPS for spring animations
	UITicksPerSecond = int(time.Second / UITickInterval)
)

// Layout constants
const (
	NavBarHeight        = 2
	FooterHeight        = 2
	MinViewportHeight   = 6
	DefaultViewportSize = 80
	NavButtonPadding    = 2
	ContentPadding      = 2
	MaxContentWidth     = 72
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)
