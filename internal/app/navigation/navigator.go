//go:generate mockgen -source=navigator.go -destination=navigator_mock.go -package=navigation
package navigation

import (
	"math"

	"gathering/internal/app/registry"
	"gathering/internal/config/logger"
)

// ChangeFunc observes an effective change of the current section
type ChangeFunc func(from, to int)

// Channel names the input that asked for a section change
type Channel string

// Input channels
const (
	ChannelDirect Channel = "direct"
	ChannelSwipe  Channel = "swipe"
	ChannelWheel  Channel = "wheel"
	ChannelNavBar Channel = "navbar"
)

// Navigator owns the current section index; it is the only writer of navigation state
type Navigator interface {
	// Current returns the index of the visible section
	Current() int
	// Section returns the descriptor of the visible section
	Section() registry.SectionDescriptor
	// Len returns the number of sections
	Len() int
	// IsFirst reports whether the first section is visible
	IsFirst() bool
	// IsLast reports whether the last section is visible
	IsLast() bool
	// GoToID moves to the section with the given id, unknown ids are ignored
	GoToID(id string)
	// GoToIndex moves to the given index after clamping it into range
	GoToIndex(i int)
	// Step moves by delta sections, clamped at both ends
	Step(delta int)
	// OnChange registers an observer called after every effective change
	OnChange(fn ChangeFunc)
}

type navigator struct {
	registry  *registry.Registry
	current   int
	observers []ChangeFunc
	log       logger.Logger
}

// NewNavigator creates a navigator positioned on the first section
func NewNavigator(reg *registry.Registry, log logger.Logger) Navigator {
	return &navigator{
		registry: reg,
		current:  0,
		log:      log.WithComponent("NAV"),
	}
}

func (n *navigator) Current() int {
	return n.current
}

func (n *navigator) Section() registry.SectionDescriptor {
	section, _ := n.registry.At(n.current)
	return section
}

func (n *navigator) Len() int {
	return n.registry.Len()
}

func (n *navigator) IsFirst() bool {
	return n.current == 0
}

func (n *navigator) IsLast() bool {
	return n.current == n.registry.Len()-1
}

func (n *navigator) GoToID(id string) {
	n.goToID(id, ChannelDirect)
}

func (n *navigator) GoToIndex(i int) {
	n.goToIndex(i, ChannelDirect)
}

func (n *navigator) Step(delta int) {
	n.goToIndex(saturatingAdd(n.current, delta), ChannelDirect)
}

func (n *navigator) goToID(id string, channel Channel) {
	section, ok := n.registry.Lookup(id)
	if !ok {
		n.log.Debug().Str("channel", string(channel)).Msgf("Ignoring unknown section '%s'", id)
		return
	}

	n.apply(section.Ordinal, channel)
}

func (n *navigator) goToIndex(i int, channel Channel) {
	n.apply(clamp(i, 0, n.registry.Len()-1), channel)
}

func (n *navigator) OnChange(fn ChangeFunc) {
	if fn != nil {
		n.observers = append(n.observers, fn)
	}
}

// apply assigns an already clamped index and notifies observers when it moved
func (n *navigator) apply(to int, channel Channel) {
	from := n.current
	if from == to {
		return
	}

	n.current = to
	n.log.Debug().
		Int("from", from).
		Int("to", to).
		Str("channel", string(channel)).
		Msgf("Section changed to '%s'", n.Section().ID)

	for _, fn := range n.observers {
		fn(from, to)
	}
}

// channelNavigator shares the state of a navigator and attributes its changes to one input channel
type channelNavigator struct {
	*navigator
	channel Channel
}

// Via returns a navigator whose changes are logged as coming from channel.
// Navigators built elsewhere, such as mocks, are returned unchanged.
func Via(nav Navigator, channel Channel) Navigator {
	switch n := nav.(type) {
	case *navigator:
		return &channelNavigator{navigator: n, channel: channel}
	case *channelNavigator:
		return &channelNavigator{navigator: n.navigator, channel: channel}
	default:
		return nav
	}
}

func (c *channelNavigator) GoToID(id string) {
	c.goToID(id, c.channel)
}

func (c *channelNavigator) GoToIndex(i int) {
	c.goToIndex(i, c.channel)
}

func (c *channelNavigator) Step(delta int) {
	c.goToIndex(saturatingAdd(c.current, delta), c.channel)
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}

	if i > hi {
		return hi
	}

	return i
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}

	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}

	return a + b
}
