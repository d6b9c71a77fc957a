package app

import (
	"go.uber.org/fx"

	"gathering/internal/app/cli"
	"gathering/internal/config/logger"
)

// Module wires the commands shared by every entrypoint; init, the deck and the server add their own modules
var Module = fx.Options(
	cli.Module,
	logger.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
