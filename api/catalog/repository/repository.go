package repository

import "go.uber.org/fx"

// Module exports dependency
var Module = fx.Options(
	fx.Provide(NewAnimalRepository),
	fx.Provide(NewShelterRepository),
	fx.Provide(NewFavoriteRepository),
)
