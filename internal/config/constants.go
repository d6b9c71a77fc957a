package config

import "time"

// app constants
const (
	AppName        = "gathering"
	AppDescription = "A terminal invitation deck you swipe, scroll and click through"
	Version        = "0.3.0"

	ConfigFile = "gathering.yaml"
	EnvFile    = ".env"
	LogFile    = "gathering.log"
)

// logging constants
const (
	LogLevel  = "info"
	LogFormat = "console"
)

// navigation constants
const (
	// SwipeThreshold is measured in terminal cells
	SwipeThreshold     = 12
	WheelCooldown      = 500 * time.Millisecond
	WheelDeadzone      = 20
	WheelNotch         = 40
	TransitionDuration = 600 * time.Millisecond
)

// reply constants
const (
	ReplyEndpoint = "http://127.0.0.1:8787/api/reply"
	ReplyTimeout  = 10 * time.Second
)

// watch constants
const (
	WatchDebounce = 300 * time.Millisecond
)

// server constants
const (
	ServerAddr      = "127.0.0.1:8787"
	ServerDatabase  = "replies.db"
	ShutdownTimeout = 5 * time.Second
	ReadTimeout     = 10 * time.Second
	MaxReplyBytes   = 16 << 10
)
