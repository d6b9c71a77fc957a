package gesture

import (
	"context"

	"github.com/looplab/fsm"

	"gathering/internal/app/errors"
	"gathering/internal/app/navigation"
	"gathering/internal/config/logger"
)

// DefaultSwipeThreshold is the minimum horizontal travel of a swipe
const DefaultSwipeThreshold = 60

// Touch FSM states
const (
	Idle     = "idle"
	Tracking = "tracking"
)

// Touch FSM events
const (
	touchStart = "touch_start"
	touchEnd   = "touch_end"
)

// Swipe turns a single-pointer touch sequence into at most one section step
type Swipe struct {
	nav       navigation.Navigator
	threshold float64
	machine   *fsm.FSM
	startX    *float64
	endX      *float64
	log       logger.Logger
}

// NewSwipe creates a swipe interpreter; a non-positive threshold falls back to the default
func NewSwipe(nav navigation.Navigator, threshold float64, log logger.Logger) *Swipe {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}

	s := &Swipe{
		nav:       navigation.Via(nav, navigation.ChannelSwipe),
		threshold: threshold,
		log:       log.WithComponent("SWIPE"),
	}

	s.machine = fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: touchStart, Src: []string{Idle, Tracking}, Dst: Tracking},
			{Name: touchEnd, Src: []string{Tracking}, Dst: Idle},
		},
		fsm.Callbacks{
			"enter_" + Idle: func(ctx context.Context, e *fsm.Event) {
				s.reset()
			},
		},
	)

	return s
}

// State returns the current touch state
func (s *Swipe) State() string {
	return s.machine.Current()
}

// TouchStart begins a new touch sequence at x, discarding any sequence in progress
func (s *Swipe) TouchStart(x float64) {
	s.fire(touchStart)

	s.startX = &x
	s.endX = nil
}

// TouchMove records the latest contact point while tracking
func (s *Swipe) TouchMove(x float64) {
	if !s.machine.Is(Tracking) {
		return
	}

	s.endX = &x
}

// TouchEnd resolves the sequence, steps the navigator at most once and returns to idle
func (s *Swipe) TouchEnd() Decision {
	decision := s.resolve()

	if !s.machine.Is(Tracking) {
		s.reset()
		return None
	}

	s.fire(touchEnd)

	if decision != None {
		s.log.Debug().Msgf("Swipe resolved: %s", decision)
		s.nav.Step(decision.Delta())
	}

	return decision
}

// resolve decides the outcome of the tracked coordinates without side effects
func (s *Swipe) resolve() Decision {
	if s.startX == nil || s.endX == nil {
		return None
	}

	diff := *s.startX - *s.endX

	switch {
	case diff > s.threshold && !s.nav.IsLast():
		return Next
	case diff < -s.threshold && !s.nav.IsFirst():
		return Previous
	default:
		return None
	}
}

func (s *Swipe) reset() {
	s.startX = nil
	s.endX = nil
}

func (s *Swipe) fire(event string) {
	err := s.machine.Event(context.Background(), event)
	if err == nil {
		return
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}

	s.log.Warn().Err(err).Msgf("Unexpected touch event '%s' in state '%s'", event, s.machine.Current())
}
