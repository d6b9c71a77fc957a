package reply

import (
	"go.uber.org/fx"

	"gathering/internal/app/monitor"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// ClientModule provides the reply submitter used by the deck
var ClientModule = fx.Options(
	fx.Provide(NewClient),
)

// ServerModule provides the reply server and its storage
var ServerModule = fx.Options(
	monitor.Module,
	fx.Provide(
		func(env *config.ServerEnv, log logger.Logger) (Store, error) {
			return OpenStore(env.Database, log)
		},
		func(env *config.ServerEnv, log logger.Logger) Notifier {
			return NewNotifier(env.Notify, log)
		},
		NewServer,
	),
)
