package gesture

import (
	"math"
	"time"

	"gathering/internal/app/navigation"
	"gathering/internal/config/logger"
)

// Wheel defaults
const (
	DefaultWheelCooldown = 500 * time.Millisecond
	DefaultWheelDeadzone = 20
)

// WheelOptions tunes the wheel interpreter
type WheelOptions struct {
	Cooldown time.Duration
	Deadzone float64
}

// DefaultWheelOptions returns the standard cooldown and deadzone
func DefaultWheelOptions() WheelOptions {
	return WheelOptions{
		Cooldown: DefaultWheelCooldown,
		Deadzone: DefaultWheelDeadzone,
	}
}

// Wheel turns scroll events into section steps, one per cooldown window
type Wheel struct {
	nav          navigation.Navigator
	opts         WheelOptions
	now          func() time.Time
	lastAccepted time.Time
	accepted     bool
	log          logger.Logger
}

// NewWheel creates a wheel interpreter; a nil clock means time.Now
func NewWheel(nav navigation.Navigator, opts WheelOptions, now func() time.Time, log logger.Logger) *Wheel {
	if now == nil {
		now = time.Now
	}

	return &Wheel{
		nav:  navigation.Via(nav, navigation.ChannelWheel),
		opts: opts,
		now:  now,
		log:  log.WithComponent("WHEEL"),
	}
}

// Scroll interprets one wheel event; positive deltaY moves forward.
// The cooldown gate runs before the deadzone, and only an effective step stamps the cooldown.
func (w *Wheel) Scroll(deltaY float64) Decision {
	now := w.now()

	if w.coolingDown(now) {
		return None
	}

	if math.IsNaN(deltaY) || math.Abs(deltaY) < w.opts.Deadzone {
		return None
	}

	decision := None

	switch {
	case deltaY > 0 && !w.nav.IsLast():
		decision = Next
	case deltaY < 0 && !w.nav.IsFirst():
		decision = Previous
	}

	if decision == None {
		return None
	}

	w.nav.Step(decision.Delta())
	w.lastAccepted = now
	w.accepted = true

	w.log.Debug().Float64("delta", deltaY).Msgf("Wheel accepted: %s", decision)

	return decision
}

// LastAccepted returns the time of the last accepted event and whether there was one
func (w *Wheel) LastAccepted() (time.Time, bool) {
	return w.lastAccepted, w.accepted
}

func (w *Wheel) coolingDown(now time.Time) bool {
	return w.accepted && now.Sub(w.lastAccepted) < w.opts.Cooldown
}
