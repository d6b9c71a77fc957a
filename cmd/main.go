package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"gathering/internal/app"
	"gathering/internal/app/cli"
	"gathering/internal/app/generator"
	"gathering/internal/app/reply"
	"gathering/internal/app/ui/wire"
	"gathering/internal/app/watcher"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}

	commandModule, output, closeOutput, err := commandOptions(cfg, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
	defer closeOutput()

	application := createApp(cfg, opts, output, commandModule)
	application.Run()
}

// loadConfig reads the config file; commands that do not depend on it fall back to defaults
func loadConfig(opts *cli.Options) (*config.Config, error) {
	switch opts.Type {
	case cli.CommandHelp, cli.CommandVersion, cli.CommandInit:
		if cfg, err := config.Load(opts.ConfigPath); err == nil {
			return cfg, nil
		}

		return config.DefaultConfig(), nil
	default:
		return config.Load(opts.ConfigPath)
	}
}

// commandOptions returns the modules and the log destination of the parsed command
func commandOptions(cfg *config.Config, opts *cli.Options) (fx.Option, io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch opts.Type {
	case cli.CommandDeck:
		output, closeOutput := logger.NewDeckOutput(cfg)
		if !cfg.Watch.Enabled {
			return wire.Module, output, closeOutput, nil
		}

		return fx.Options(
			fx.Supply(watcher.ConfigPath(opts.ConfigPath)),
			watcher.Module,
			wire.Module,
		), output, closeOutput, nil
	case cli.CommandInit:
		return generator.Module, os.Stdout, noop, nil
	case cli.CommandServe:
		env, err := config.LoadServerEnv(config.EnvFile)
		if err != nil {
			return nil, nil, noop, err
		}

		return fx.Options(fx.Supply(env), reply.ServerModule), os.Stdout, noop, nil
	default:
		return fx.Options(), os.Stdout, noop, nil
	}
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, opts *cli.Options, output io.Writer, commandModule fx.Option) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts, logger.Output{Writer: output}),
		commandModule,
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
