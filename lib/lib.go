package lib

import "go.uber.org/fx"

// Module exports dependency
var Module = fx.Options(
	fx.Provide(NewConfig),
	fx.Provide(NewLogger),
	fx.Provide(NewHttpHandler),
	fx.Provide(NewDatabase),
	fx.Provide(NewCache),
	fx.Provide(NewCaptcha),
	fx.Provide(NewWebSocket),
	fx.Provide(NewCrontab),
	fx.Provide(NewQueue),
)
