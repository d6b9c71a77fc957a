package monitor

import "go.uber.org/fx"

// Module provides the process monitor used by the reply server health check
var Module = fx.Options(
	fx.Provide(NewMonitor),
)
