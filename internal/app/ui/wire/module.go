package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/fx"

	"gathering/internal/app/gesture"
	"gathering/internal/app/navigation"
	"gathering/internal/app/registry"
	"gathering/internal/app/reply"
	"gathering/internal/app/ui/deck"
	"gathering/internal/app/ui/navbar"
	"gathering/internal/app/watcher"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// UI creates a Bubble Tea program for the deck
type UI func(ctx context.Context) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	registry.Module,
	navigation.Module,
	gesture.Module,
	navbar.Module,
	reply.ClientModule,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	Registry  *registry.Registry
	Navigator navigation.Navigator
	Swipe     *gesture.Swipe
	Wheel     *gesture.Wheel
	NavBar    *navbar.Bar
	Zones     *zone.Manager
	Submitter reply.Submitter
	Watcher   watcher.Watcher `optional:"true"`
	Logger    logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := deck.New(
			ctx,
			params.Config,
			params.Navigator,
			params.Registry,
			params.Swipe,
			params.Wheel,
			params.NavBar,
			params.Zones,
			params.Submitter,
			params.Logger,
		)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(ctx),
		)

		if params.Watcher != nil {
			err := params.Watcher.Start(ctx, func(r watcher.Reload) {
				p.Send(deck.ReloadMsg(r))
			})
			if err != nil {
				params.Logger.Warn().Err(err).Msg("Live reload disabled")
			}
		}

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}
