package gesture

import (
	"go.uber.org/fx"

	"gathering/internal/app/navigation"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

// Module provides the swipe and wheel interpreters
var Module = fx.Options(
	fx.Provide(
		func(nav navigation.Navigator, cfg *config.Config, log logger.Logger) *Swipe {
			return NewSwipe(nav, cfg.Navigation.SwipeThreshold, log)
		},
		func(nav navigation.Navigator, cfg *config.Config, log logger.Logger) *Wheel {
			return NewWheel(nav, WheelOptions{
				Cooldown: cfg.Navigation.WheelCooldown,
				Deadzone: cfg.Navigation.WheelDeadzone,
			}, nil, log)
		},
	),
)
