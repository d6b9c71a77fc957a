package watcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gathering/internal/app/errors"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

const validConfig = `event:
  title: "Autumn Picnic"
  pickup_times:
    - "10:00"
`

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	mockLog.EXPECT().Debug().DoAndReturn(noopLogger.Debug).AnyTimes()
	mockLog.EXPECT().Info().DoAndReturn(noopLogger.Info).AnyTimes()
	mockLog.EXPECT().Warn().DoAndReturn(noopLogger.Warn).AnyTimes()
	mockLog.EXPECT().Error().DoAndReturn(noopLogger.Error).AnyTimes()
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()

	return mockLog
}

func newTestWatcher(t *testing.T) (Watcher, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), config.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0600))

	cfg := config.DefaultConfig()
	cfg.Watch.Debounce = 20 * time.Millisecond

	w, err := NewWatcher(cfg, ConfigPath(path), newTestLogger(ctrl))
	require.NoError(t, err)
	t.Cleanup(w.Close)

	return w, path
}

func startWatcher(t *testing.T, w Watcher) <-chan Reload {
	t.Helper()

	reloads := make(chan Reload, 4)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, w.Start(ctx, func(r Reload) {
		reloads <- r
	}))

	return reloads
}

func waitReload(t *testing.T, reloads <-chan Reload) Reload {
	t.Helper()

	select {
	case r := <-reloads:
		return r
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
		return Reload{}
	}
}

func Test_Watcher_ReloadsOnWrite(t *testing.T) {
	w, path := newTestWatcher(t)
	reloads := startWatcher(t, w)

	updated := `event:
  title: "Winter Party"
  pickup_times:
    - "18:00"
`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0600))

	r := waitReload(t, reloads)

	require.NoError(t, r.Err)
	assert.Equal(t, "Winter Party", r.Config.Event.Title)
	assert.Equal(t, []string{"18:00"}, r.Config.Event.PickupTimes)
	assert.Positive(t, r.Events)
}

func Test_Watcher_ReloadsOnReplace(t *testing.T) {
	w, path := newTestWatcher(t)
	reloads := startWatcher(t, w)

	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(validConfig), 0600))
	require.NoError(t, os.Rename(tmp, path))

	r := waitReload(t, reloads)

	require.NoError(t, r.Err)
	assert.Equal(t, "Autumn Picnic", r.Config.Event.Title)
}

func Test_Watcher_InvalidConfig(t *testing.T) {
	w, path := newTestWatcher(t)
	reloads := startWatcher(t, w)

	require.NoError(t, os.WriteFile(path, []byte("event:\n  pickup_times: []\nsections: []\n"), 0600))

	r := waitReload(t, reloads)

	assert.ErrorIs(t, r.Err, errors.ErrInvalidConfig)
	assert.Nil(t, r.Config)
}

func Test_Watcher_RemovedFileKeepsPrevious(t *testing.T) {
	w, path := newTestWatcher(t)
	reloads := startWatcher(t, w)

	require.NoError(t, os.Remove(path))

	r := waitReload(t, reloads)

	assert.ErrorIs(t, r.Err, errors.ErrFailedToReadConfig)
	assert.ErrorIs(t, r.Err, os.ErrNotExist)
	assert.Nil(t, r.Config)
}

func Test_Watcher_IgnoresOtherFiles(t *testing.T) {
	w, path := newTestWatcher(t)
	reloads := startWatcher(t, w)

	dir := filepath.Dir(path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# notes"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "."+config.ConfigFile+".swp"), []byte("swap"), 0600))

	select {
	case r := <-reloads:
		t.Fatalf("unexpected reload after %d events", r.Events)
	case <-time.After(200 * time.Millisecond):
	}
}

func Test_Watcher_StartAfterClose(t *testing.T) {
	w, _ := newTestWatcher(t)
	w.Close()
	w.Close()

	err := w.Start(context.Background(), func(Reload) {})

	assert.ErrorIs(t, err, errors.ErrWatcherClosed)
}

func Test_Watcher_StopsWithContext(t *testing.T) {
	w, path := newTestWatcher(t)

	reloads := make(chan Reload, 1)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, w.Start(ctx, func(r Reload) { reloads <- r }))
	cancel()

	require.Eventually(t, func() bool {
		return errors.Is(w.Start(context.Background(), func(Reload) {}), errors.ErrWatcherClosed)
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0600))

	select {
	case <-reloads:
		t.Fatal("closed watcher must not reload")
	case <-time.After(200 * time.Millisecond):
	}
}
