package controller

import "go.uber.org/fx"

// Module exports dependency
var Module = fx.Options(
	fx.Provide(NewAnimalController),
	fx.Provide(NewShelterController),
	fx.Provide(NewFavoriteController),
	fx.Provide(NewSyncController),
)
