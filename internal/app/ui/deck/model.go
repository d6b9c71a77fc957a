package deck

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gathering/internal/app/gesture"
	"gathering/internal/app/navigation"
	"gathering/internal/app/registry"
	"gathering/internal/app/reply"
	"gathering/internal/app/ui/components"
	"gathering/internal/app/ui/content"
	"gathering/internal/app/ui/form"
	"gathering/internal/app/ui/navbar"
	"gathering/internal/app/ui/transition"
	"gathering/internal/app/watcher"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// ui holds layout and animation state
type ui struct {
	width   int
	height  int
	ready   bool
	ticking bool
	status  string
	frames  map[string]string
	help    help.Model
}

// tapSlop is the travel in cells a press may jitter by and still count as a tap
const tapSlop = 1

// pointer tracks the left button between press and release
type pointer struct {
	down   bool
	startX int
	moved  bool
}

// Model is the root Bubble Tea model of the deck
type Model struct {
	nav      navigation.Navigator
	sections []registry.SectionDescriptor
	swipe    *gesture.Swipe
	wheel    *gesture.Wheel
	bar      *navbar.Bar
	slide    *transition.Slide
	content  *content.Renderer
	form     *form.Model
	zones    *zone.Manager
	keys     components.KeyMap
	notch    float64
	host     string
	pointer  pointer
	ui       *ui
	copy     func(text string) error
	log      logger.Logger
}

// New creates the deck model and subscribes the transition and the nav bar to section changes
func New(
	ctx context.Context,
	cfg *config.Config,
	nav navigation.Navigator,
	reg *registry.Registry,
	swipe *gesture.Swipe,
	wheel *gesture.Wheel,
	bar *navbar.Bar,
	zones *zone.Manager,
	submitter reply.Submitter,
	log logger.Logger,
) *Model {
	m := &Model{
		nav:      nav,
		sections: reg.All(),
		swipe:    swipe,
		wheel:    wheel,
		bar:      bar,
		slide:    transition.NewSlide(cfg.Navigation.Transition, nil),
		content:  content.NewRenderer(cfg.Event, content.DarkStyle, log),
		form:     form.New(ctx, cfg.Event, submitter, zones, log),
		zones:    zones,
		keys:     components.DefaultKeyMap(),
		notch:    cfg.Navigation.WheelNotch,
		host:     cfg.Event.Host,
		ui: &ui{
			frames: make(map[string]string),
			help:   help.New(),
		},
		copy: clipboard.WriteAll,
		log:  log.WithComponent("DECK"),
	}

	m.slide.Settle(nav.Current())

	nav.OnChange(func(from, to int) {
		m.slide.Start(to)
		m.bar.Follow(to)
	})

	return m
}

// Init starts no background work; animation ticks begin on the first section change
func (m *Model) Init() tea.Cmd {
	return nil
}

// tickMsg advances running animations
type tickMsg time.Time

// ReloadMsg carries the configuration re-read while the deck is open
type ReloadMsg watcher.Reload

// copiedMsg reports the outcome of a clipboard copy
type copiedMsg struct {
	err error
}

func tickCmd() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
