//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"gathering/internal/app/errors"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// ConfigPath is the configuration file the deck was started with
type ConfigPath string

// Reload is the outcome of re-reading the configuration after it changed.
// Events is the number of file events the reload absorbed.
type Reload struct {
	Config *config.Config
	Events int
	Err    error
}

// Watcher reloads the configuration file whenever it is written
type Watcher interface {
	Start(ctx context.Context, onReload func(Reload)) error
	Close()
}

// watcher implements the Watcher interface on top of fsnotify
type watcher struct {
	path      string
	dir       string
	wait      time.Duration
	matcher   Matcher
	load      func(path string) (*config.Config, error)
	fsWatcher *fsnotify.Watcher
	burst     *burst
	log       logger.Logger
	mu        sync.Mutex
	started   bool
	closed    bool
}

// NewWatcher creates a watcher for the configuration file. The parent directory is watched
// because editors often replace the file instead of writing it in place.
func NewWatcher(cfg *config.Config, path ConfigPath, log logger.Logger) (Watcher, error) {
	file := string(path)
	if file == "" {
		file = config.ConfigFile
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", file, err)
	}

	matcher, err := NewMatcher([]string{glob.QuoteMeta(filepath.Base(abs))})
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &watcher{
		path:      abs,
		dir:       filepath.Dir(abs),
		wait:      cfg.Watch.Debounce,
		matcher:   matcher,
		load:      config.Load,
		fsWatcher: fsw,
		log:       log.WithComponent("WATCHER"),
	}, nil
}

// Start begins watching; onReload runs on a timer goroutine after each burst of writes
func (w *watcher) Start(ctx context.Context, onReload func(Reload)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errors.ErrWatcherClosed
	}

	if w.started {
		return nil
	}

	if err := w.fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.started = true
	w.burst = newBurst(w.wait, func(events int) {
		w.reload(events, onReload)
	})

	go w.processEvents()

	go func() {
		<-ctx.Done()
		w.Close()
	}()

	w.log.Info().Msgf("Watching %s for changes", w.path)

	return nil
}

// Close stops watching and drops pending reloads
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true

	if w.burst != nil {
		w.burst.stop()
	}

	if err := w.fsWatcher.Close(); err != nil {
		w.log.Warn().Err(err).Msg("Failed to close file watcher")
	}
}

func (w *watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) || !w.matcher.Match(event.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.log.Debug().Msgf("%s changed (%s)", filepath.Base(event.Name), event.Op)
	w.burst.touch()
}

// reload re-reads the file; a file that disappeared is an error so the deck keeps its content
func (w *watcher) reload(events int, onReload func(Reload)) {
	var (
		cfg *config.Config
		err error
	)

	if _, statErr := os.Stat(w.path); statErr != nil {
		err = fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, statErr)
	} else {
		cfg, err = w.load(w.path)
	}

	if err != nil {
		w.log.Warn().Err(err).Msgf("Keeping the previous configuration, %s is invalid", filepath.Base(w.path))
	} else {
		w.log.Info().Msgf("Reloaded %s", filepath.Base(w.path))
	}

	onReload(Reload{Config: cfg, Events: events, Err: err})
}

// isRelevantEvent returns true if the event may have changed the file content
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) ||
		event.Has(fsnotify.Remove)
}
