package navbar

import (
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/fx"
)

// Module provides the nav bar and the zone manager shared by clickable views
var Module = fx.Options(
	fx.Provide(
		zone.New,
		New,
	),
)
