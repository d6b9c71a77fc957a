package watcher

import (
	"sync"
	"time"
)

// burst collapses the events an editor produces while saving the config file into one reload.
// The reload runs once the file has been quiet for the wait, with the number of events it absorbed.
type burst struct {
	wait    time.Duration
	reload  func(events int)
	mu      sync.Mutex
	timer   *time.Timer
	events  int
	stopped bool
}

func newBurst(wait time.Duration, reload func(events int)) *burst {
	return &burst{wait: wait, reload: reload}
}

// touch records one event on the file and pushes the reload back by the wait
func (b *burst) touch() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}

	b.events++

	if b.timer == nil {
		b.timer = time.AfterFunc(b.wait, b.flush)
		return
	}

	b.timer.Reset(b.wait)
}

// stop cancels a pending reload; later events are ignored
func (b *burst) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	b.events = 0

	if b.timer != nil {
		b.timer.Stop()
	}
}

func (b *burst) flush() {
	b.mu.Lock()
	events := b.events
	b.events = 0
	stopped := b.stopped
	b.mu.Unlock()

	if stopped || events == 0 {
		return
	}

	b.reload(events)
}
