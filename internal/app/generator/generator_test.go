package generator

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gathering/internal/app/errors"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	noopEvent := noopLogger.Info()
	mockLog.EXPECT().Info().Return(noopEvent).AnyTimes()

	return mockLog
}

func Test_DefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, config.ConfigFile, opts.Path)
	assert.Equal(t, config.LogFile, opts.LogFile)
	assert.Len(t, opts.Sections, 4)
}

func Test_NewGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)

	gen := NewGenerator(newTestLogger(ctrl))
	assert.NotNil(t, gen)
}

func Test_Generator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)

	path := filepath.Join(t.TempDir(), config.ConfigFile)
	opts := DefaultOptions()
	opts.Path = path

	gen := NewGenerator(newTestLogger(ctrl))
	require.NoError(t, gen.Generate(opts, false, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "version: 1")
	assert.Contains(t, string(content), "swipe_threshold: 12")
	assert.Contains(t, string(content), "in terminal cells")
	assert.Contains(t, string(content), "- id: schedule")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func Test_Generator_Generate_FileExists(t *testing.T) {
	ctrl := gomock.NewController(t)

	path := filepath.Join(t.TempDir(), config.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0600))

	opts := DefaultOptions()
	opts.Path = path

	gen := NewGenerator(newTestLogger(ctrl))

	err := gen.Generate(opts, false, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, gen.Generate(opts, true, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "version: 1")
}

func Test_Generator_Generate_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)

	var out bytes.Buffer

	path := filepath.Join(t.TempDir(), config.ConfigFile)
	opts := DefaultOptions()
	opts.Path = path

	gen := &generator{out: &out, log: newTestLogger(ctrl)}
	require.NoError(t, gen.Generate(opts, false, true))

	assert.Contains(t, out.String(), "pickup_times:")
	assert.NoFileExists(t, path)
}

func Test_Generator_Generate_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)

	opts := DefaultOptions()
	opts.Path = filepath.Join(t.TempDir(), config.ConfigFile)
	opts.Sections = []config.Section{{ID: "top", Label: "Top"}, {ID: "top", Label: "Again"}}

	gen := NewGenerator(newTestLogger(ctrl))

	err := gen.Generate(opts, false, false)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	assert.ErrorIs(t, err, errors.ErrDuplicateSectionID)
	assert.NoFileExists(t, opts.Path)
}
