package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gathering/internal/app/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LogLevel, cfg.Logging.Level)
	assert.Equal(t, LogFormat, cfg.Logging.Format)
	assert.Equal(t, 1, cfg.Version)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, WatchDebounce, cfg.Watch.Debounce)
	assert.Equal(t, float64(SwipeThreshold), cfg.Navigation.SwipeThreshold)
	assert.Equal(t, WheelCooldown, cfg.Navigation.WheelCooldown)
	assert.Equal(t, float64(WheelDeadzone), cfg.Navigation.WheelDeadzone)
	assert.Equal(t, TransitionDuration, cfg.Navigation.Transition)
	assert.Equal(t, ReplyEndpoint, cfg.Reply.Endpoint)
	assert.Len(t, cfg.Sections, 4)
	assert.Equal(t, "top", cfg.Sections[0].ID)
	assert.Equal(t, "form", cfg.Sections[3].ID)
	assert.Len(t, cfg.Event.PickupTimes, 6)
	assert.Len(t, cfg.Event.Schedule, 3)
	assert.NoError(t, cfg.Validate())
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name   string
		path   func(t *testing.T) string
		error  error
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "no config file found - uses default",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultSections(), cfg.Sections)
			},
		},
		{
			name: "valid config file",
			path: func(t *testing.T) string {
				return writeConfig(t, `version: 1
logging:
  level: debug
  format: json
navigation:
  swipe_threshold: 60
  wheel_cooldown: 250ms
  wheel_deadzone: 10
sections:
  - id: intro
    label: Intro
  - id: rsvp
    label: RSVP
event:
  pickup_times: ["noon"]
`)
			},
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, 60.0, cfg.Navigation.SwipeThreshold)
				assert.Equal(t, 250*time.Millisecond, cfg.Navigation.WheelCooldown)
				assert.Equal(t, 10.0, cfg.Navigation.WheelDeadzone)
				assert.Equal(t, TransitionDuration, cfg.Navigation.Transition)
				assert.Equal(t, []Section{{ID: "intro", Label: "Intro"}, {ID: "rsvp", Label: "RSVP"}}, cfg.Sections)
				assert.Equal(t, []string{"noon"}, cfg.Event.PickupTimes)
				assert.Len(t, cfg.Event.Schedule, 3)
			},
		},
		{
			name: "invalid yaml",
			path: func(t *testing.T) string {
				return writeConfig(t, "sections: [\n")
			},
			error: errors.ErrFailedToParseConfig,
		},
		{
			name: "invalid yaml structure for unmarshal",
			path: func(t *testing.T) string {
				return writeConfig(t, "sections: \"this should be a list\"\n")
			},
			error: errors.ErrFailedToParseConfig,
		},
		{
			name: "duplicate section id",
			path: func(t *testing.T) string {
				return writeConfig(t, `sections:
  - id: top
    label: Top
  - id: top
    label: Again
`)
			},
			error: errors.ErrDuplicateSectionID,
		},
		{
			name: "directory instead of file",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			error: errors.ErrFailedToReadConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path(t))

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.verify != nil {
				tt.verify(t, cfg)
			}
		})
	}
}

func Test_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Sections = []Section{{ID: "  top ", Label: " Top "}}

	cfg.ApplyDefaults()

	assert.Equal(t, LogLevel, cfg.Logging.Level)
	assert.Equal(t, LogFormat, cfg.Logging.Format)
	assert.Equal(t, float64(SwipeThreshold), cfg.Navigation.SwipeThreshold)
	assert.Equal(t, float64(WheelNotch), cfg.Navigation.WheelNotch)
	assert.Equal(t, TransitionDuration, cfg.Navigation.Transition)
	assert.Equal(t, ReplyTimeout, cfg.Reply.Timeout)
	assert.Equal(t, []Section{{ID: "top", Label: "Top"}}, cfg.Sections)
}

func Test_ApplyDefaults_EmptySections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultSections(), cfg.Sections)
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		error  error
	}{
		{name: "valid default", mutate: func(cfg *Config) {}},
		{name: "zero swipe threshold", mutate: func(cfg *Config) { cfg.Navigation.SwipeThreshold = 0 }, error: errors.ErrInvalidSwipeThreshold},
		{name: "negative cooldown", mutate: func(cfg *Config) { cfg.Navigation.WheelCooldown = -time.Second }, error: errors.ErrInvalidWheelCooldown},
		{name: "zero cooldown is allowed", mutate: func(cfg *Config) { cfg.Navigation.WheelCooldown = 0 }},
		{name: "negative deadzone", mutate: func(cfg *Config) { cfg.Navigation.WheelDeadzone = -1 }, error: errors.ErrInvalidWheelDeadzone},
		{name: "zero transition", mutate: func(cfg *Config) { cfg.Navigation.Transition = 0 }, error: errors.ErrInvalidTransition},
		{name: "blank endpoint", mutate: func(cfg *Config) { cfg.Reply.Endpoint = "  " }, error: errors.ErrReplyEndpointRequired},
		{name: "zero reply timeout", mutate: func(cfg *Config) { cfg.Reply.Timeout = 0 }, error: errors.ErrInvalidReplyTimeout},
		{name: "negative watch debounce", mutate: func(cfg *Config) { cfg.Watch.Debounce = -time.Second }, error: errors.ErrInvalidWatchDebounce},
		{name: "no pickup times", mutate: func(cfg *Config) { cfg.Event.PickupTimes = nil }, error: errors.ErrPickupTimesRequired},
		{name: "missing section id", mutate: func(cfg *Config) { cfg.Sections[1].ID = "" }, error: errors.ErrSectionIDRequired},
		{name: "missing section label", mutate: func(cfg *Config) { cfg.Sections[2].Label = "" }, error: errors.ErrSectionLabelMissing},
		{name: "duplicate section id", mutate: func(cfg *Config) { cfg.Sections[3].ID = "top" }, error: errors.ErrDuplicateSectionID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.error == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.error)
		})
	}
}

func Test_LoadServerEnv(t *testing.T) {
	t.Run("defaults without env file", func(t *testing.T) {
		t.Setenv("GATHERING_ADDR", "")
		os.Unsetenv("GATHERING_ADDR")

		serverEnv, err := LoadServerEnv(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err)
		assert.Equal(t, ServerAddr, serverEnv.Addr)
		assert.Equal(t, ServerDatabase, serverEnv.Database)
		assert.True(t, serverEnv.Notify)
	})

	t.Run("reads env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("GATHERING_DB=/tmp/test.db\nGATHERING_NOTIFY=false\n"), 0600))

		t.Setenv("GATHERING_DB", "")
		t.Setenv("GATHERING_NOTIFY", "")
		os.Unsetenv("GATHERING_DB")
		os.Unsetenv("GATHERING_NOTIFY")

		serverEnv, err := LoadServerEnv(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/test.db", serverEnv.Database)
		assert.False(t, serverEnv.Notify)
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Setenv("GATHERING_NOTIFY", "maybe")

		_, err := LoadServerEnv(filepath.Join(t.TempDir(), ".env"))
		assert.ErrorIs(t, err, errors.ErrFailedToParseEnv)
	})
}

func Test_Load_PicnicExample(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", "picnic", ConfigFile))
	require.NoError(t, err)

	assert.Equal(t, "Autumn Picnic", cfg.Event.Title)
	assert.Len(t, cfg.Event.PickupTimes, 4)
	assert.Len(t, cfg.Event.Schedule, 3)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Navigation.WheelCooldown)
	assert.Equal(t, float64(10), cfg.Navigation.SwipeThreshold)

	require.Len(t, cfg.Sections, 5)
	assert.Equal(t, "map", cfg.Sections[3].ID)
	assert.Equal(t, "Getting there", cfg.Sections[3].Title)
	assert.Contains(t, cfg.Sections[1].Body, "folding chair")
}
