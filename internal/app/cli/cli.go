//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"gathering/internal/app/errors"
	"gathering/internal/app/generator"
	"gathering/internal/app/reply"
	"gathering/internal/app/ui/wire"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (exitCode int, err error)
}

// Params contains the dependencies of the cli; the generator, the deck and the server are only wired for their own command
type Params struct {
	fx.In

	Options   *Options
	Config    *config.Config
	Generator generator.Generator `optional:"true"`
	UI        wire.UI             `optional:"true"`
	Server    reply.Server        `optional:"true"`
	Logger    logger.Logger
}

// cli represents the command-line interface for the application
type cli struct {
	options    *Options
	cfg        *config.Config
	generator  generator.Generator
	ui         wire.UI
	server     reply.Server
	ctx        context.Context
	out        io.Writer
	isTerminal func() bool
	log        logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(params Params) CLI {
	return &cli{
		options:   params.Options,
		cfg:       params.Config,
		generator: params.Generator,
		ui:        params.UI,
		server:    params.Server,
		ctx:       context.Background(),
		out:       os.Stdout,
		isTerminal: func() bool {
			return term.IsTerminal(os.Stdout.Fd())
		},
		log: params.Logger,
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	var err error

	switch c.options.Type {
	case CommandHelp:
		fmt.Fprintln(c.out, RenderUsage())
	case CommandVersion:
		fmt.Fprintln(c.out, RenderTitle())
	case CommandInit:
		err = c.handleInit()
	case CommandServe:
		err = c.handleServe()
	case CommandDeck:
		err = c.handleDeck()
	default:
		err = errors.ErrUnknownCommand
	}

	if err != nil {
		c.log.Error().Err(err).Msg("Command failed")
		fmt.Fprintln(c.out, RenderError(err))

		return 1, err
	}

	return 0, nil
}

func (c *cli) handleInit() error {
	if c.generator == nil {
		return errors.ErrUnknownCommand
	}

	opts := generator.DefaultOptions()
	opts.Path = c.options.ConfigPath

	return c.generator.Generate(opts, c.options.Force, c.options.DryRun)
}

// handleServe runs the reply server until an interrupt arrives
func (c *cli) handleServe() error {
	if c.server == nil {
		return errors.ErrStorageNotConfigured
	}

	ctx, stop := signal.NotifyContext(c.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.server.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	return c.server.Stop(shutdownCtx)
}

// handleDeck runs the interactive deck on the alternate screen
func (c *cli) handleDeck() error {
	if !c.isTerminal() {
		return errors.ErrNotATerminal
	}

	if c.ui == nil {
		return errors.ErrUnknownCommand
	}

	ctx, cancel := context.WithCancel(c.ctx)
	defer cancel()

	program, err := c.ui(ctx)
	if err != nil {
		return err
	}

	c.log.Debug().Msg("Starting deck")

	if _, err := program.Run(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
