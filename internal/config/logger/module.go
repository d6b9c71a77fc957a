package logger

import (
	"io"

	"go.uber.org/fx"

	"gathering/internal/config"
)

// Output selects the destination of application logs; a nil Writer means stdout
type Output struct {
	io.Writer
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, out Output) Logger {
		return NewLoggerWithOutput(cfg, out.Writer)
	}),
)
