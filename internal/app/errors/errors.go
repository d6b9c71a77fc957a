package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrFailedToParseEnv    = errors.New("failed to parse environment")

	ErrEmptyRegistry       = errors.New("section registry is empty")
	ErrSectionIDRequired   = errors.New("section id is required")
	ErrDuplicateSectionID  = errors.New("duplicate section id")
	ErrSectionLabelMissing = errors.New("section label is required")

	ErrInvalidSwipeThreshold = errors.New("swipe threshold must be positive")
	ErrInvalidWheelCooldown  = errors.New("wheel cooldown must not be negative")
	ErrInvalidWheelDeadzone  = errors.New("wheel deadzone must not be negative")
	ErrInvalidTransition     = errors.New("transition duration must be positive")
	ErrReplyEndpointRequired = errors.New("reply endpoint is required")
	ErrInvalidReplyTimeout   = errors.New("reply timeout must be positive")
	ErrPickupTimesRequired   = errors.New("at least one pickup time is required")
	ErrInvalidWatchDebounce  = errors.New("watch debounce must not be negative")

	ErrNotATerminal   = errors.New("stdout is not a terminal")
	ErrUnknownCommand = errors.New("unknown command")
	ErrWatcherClosed  = errors.New("watcher is closed")

	ErrFailedToCreateRequest = errors.New("failed to create request")
	ErrReplyRejected         = errors.New("reply was rejected by the server")
	ErrReplyUnreachable      = errors.New("reply server is unreachable")
	ErrEmptyReply            = errors.New("reply payload is empty")
	ErrPickupTimeRequired    = errors.New("pickup time is required")
	ErrStorageNotConfigured  = errors.New("storage is not configured")
	ErrFailedToOpenStorage   = errors.New("failed to open storage")
	ErrFailedToSaveReply     = errors.New("failed to save reply")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
