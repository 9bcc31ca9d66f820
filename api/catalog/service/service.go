package service

import "go.uber.org/fx"

// Module exports dependency
var Module = fx.Options(
	fx.Provide(NewAnimalService),
	fx.Provide(NewShelterService),
	fx.Provide(NewFavoriteService),
	fx.Provide(NewSyncService),
)
