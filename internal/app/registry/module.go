package registry

import "go.uber.org/fx"

// Module provides the section registry
var Module = fx.Options(
	fx.Provide(NewFromConfig),
)
