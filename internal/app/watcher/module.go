package watcher

import "go.uber.org/fx"

// Module provides the configuration watcher used by the deck
var Module = fx.Options(
	fx.Provide(NewWatcher),
)
