package controller

import "go.uber.org/fx"

// Module exports dependency
var Module = fx.Options(
	fx.Provide(NewAuthController),
	fx.Provide(NewUserController),
	fx.Provide(NewAccessLogController),
)
