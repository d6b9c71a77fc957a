package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"gathering/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	Navigation Navigation `yaml:"navigation" mapstructure:"navigation"`
	Reply      struct {
		Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
		Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	} `yaml:"reply" mapstructure:"reply"`
	Watch    Watch     `yaml:"watch" mapstructure:"watch"`
	Event    Event     `yaml:"event" mapstructure:"event"`
	Sections []Section `yaml:"sections" mapstructure:"sections"`
	Version  int       `yaml:"version" mapstructure:"version"`
}

// Watch controls reloading the invitation while the deck is open
type Watch struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// Navigation holds the tuning of the gesture interpreters and the transition
type Navigation struct {
	SwipeThreshold float64       `yaml:"swipe_threshold" mapstructure:"swipe_threshold"`
	WheelCooldown  time.Duration `yaml:"wheel_cooldown" mapstructure:"wheel_cooldown"`
	WheelDeadzone  float64       `yaml:"wheel_deadzone" mapstructure:"wheel_deadzone"`
	WheelNotch     float64       `yaml:"wheel_notch" mapstructure:"wheel_notch"`
	Transition     time.Duration `yaml:"transition" mapstructure:"transition"`
}

// Event describes the gathering the deck announces
type Event struct {
	Title       string     `yaml:"title" mapstructure:"title"`
	Subtitle    string     `yaml:"subtitle" mapstructure:"subtitle"`
	Date        string     `yaml:"date" mapstructure:"date"`
	Host        string     `yaml:"host" mapstructure:"host"`
	PickupTimes []string   `yaml:"pickup_times" mapstructure:"pickup_times"`
	Schedule    []Timeslot `yaml:"schedule" mapstructure:"schedule"`
}

// Timeslot is a single entry of the tentative schedule
type Timeslot struct {
	Time string `yaml:"time" mapstructure:"time"`
	Text string `yaml:"text" mapstructure:"text"`
}

// Section represents one full-screen page of the deck
type Section struct {
	ID    string `yaml:"id" mapstructure:"id"`
	Label string `yaml:"label" mapstructure:"label"`
	Title string `yaml:"title" mapstructure:"title"`
	Body  string `yaml:"body" mapstructure:"body"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat

	cfg.Navigation = Navigation{
		SwipeThreshold: SwipeThreshold,
		WheelCooldown:  WheelCooldown,
		WheelDeadzone:  WheelDeadzone,
		WheelNotch:     WheelNotch,
		Transition:     TransitionDuration,
	}

	cfg.Reply.Endpoint = ReplyEndpoint
	cfg.Reply.Timeout = ReplyTimeout

	cfg.Watch.Debounce = WatchDebounce

	cfg.Event = DefaultEvent()
	cfg.Sections = DefaultSections()

	return cfg
}

// DefaultEvent returns the built-in event details
func DefaultEvent() Event {
	return Event{
		Title:    "Sunami Wedding",
		Subtitle: "Celebration",
		Date:     "2025.11.22 Sat",
		Host:     "角南夫妻お祝い実行委員会",
		PickupTimes: []string{
			"13:00ごろ",
			"13:30ごろ",
			"14:00ごろ",
			"14:30ごろ",
			"15:00ごろ",
			"おまかせ",
		},
		Schedule: []Timeslot{
			{Time: "13:00 ごろ", Text: "角南宅周辺に集合（順番にお迎え）"},
			{Time: "16:00 ごろ", Text: "明石エリアの会場へ移動"},
			{Time: "20:30 ごろ", Text: "解散（その場の雰囲気で前後する可能性あり）"},
		},
	}
}

// DefaultSections returns the built-in section registry input
func DefaultSections() []Section {
	return []Section{
		{ID: "top", Label: "Top"},
		{ID: "info", Label: "Details"},
		{ID: "schedule", Label: "Schedule"},
		{ID: "form", Label: "Reply"},
	}
}

// Load loads the configuration from the given file, falling back to defaults when it is absent
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	// lists replace the defaults instead of being merged element by element
	if v.IsSet("sections") {
		cfg.Sections = nil
	}

	if v.IsSet("event.pickup_times") {
		cfg.Event.PickupTimes = nil
	}

	if v.IsSet("event.schedule") {
		cfg.Event.Schedule = nil
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// ApplyDefaults fills zero values left by a partial config file
func (c *Config) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = LogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = LogFormat
	}

	if c.Navigation.SwipeThreshold == 0 {
		c.Navigation.SwipeThreshold = SwipeThreshold
	}

	if c.Navigation.WheelNotch == 0 {
		c.Navigation.WheelNotch = WheelNotch
	}

	if c.Navigation.Transition == 0 {
		c.Navigation.Transition = TransitionDuration
	}

	if c.Reply.Timeout == 0 {
		c.Reply.Timeout = ReplyTimeout
	}

	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = WatchDebounce
	}

	if len(c.Sections) == 0 {
		c.Sections = DefaultSections()
	}

	for i := range c.Sections {
		c.Sections[i].ID = strings.TrimSpace(c.Sections[i].ID)
		c.Sections[i].Label = strings.TrimSpace(c.Sections[i].Label)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateNavigation(); err != nil {
		return err
	}

	if err := c.validateReply(); err != nil {
		return err
	}

	if c.Watch.Debounce < 0 {
		return errors.ErrInvalidWatchDebounce
	}

	if len(c.Event.PickupTimes) == 0 {
		return errors.ErrPickupTimesRequired
	}

	return c.validateSections()
}

// validateNavigation validates gesture and transition tuning
func (c *Config) validateNavigation() error {
	n := c.Navigation

	if n.SwipeThreshold <= 0 {
		return errors.ErrInvalidSwipeThreshold
	}

	if n.WheelCooldown < 0 {
		return errors.ErrInvalidWheelCooldown
	}

	if n.WheelDeadzone < 0 {
		return errors.ErrInvalidWheelDeadzone
	}

	if n.Transition <= 0 {
		return errors.ErrInvalidTransition
	}

	return nil
}

// validateReply validates the reply client settings
func (c *Config) validateReply() error {
	if strings.TrimSpace(c.Reply.Endpoint) == "" {
		return errors.ErrReplyEndpointRequired
	}

	if c.Reply.Timeout <= 0 {
		return errors.ErrInvalidReplyTimeout
	}

	return nil
}

// validateSections validates the registry input
func (c *Config) validateSections() error {
	seen := make(map[string]bool, len(c.Sections))

	for i, section := range c.Sections {
		if section.ID == "" {
			return fmt.Errorf("section %d: %w", i, errors.ErrSectionIDRequired)
		}

		if section.Label == "" {
			return fmt.Errorf("section %s: %w", section.ID, errors.ErrSectionLabelMissing)
		}

		if seen[section.ID] {
			return fmt.Errorf("%w: '%s'", errors.ErrDuplicateSectionID, section.ID)
		}

		seen[section.ID] = true
	}

	return nil
}
