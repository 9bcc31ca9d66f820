package route

import "go.uber.org/fx"

// Module exports dependency to container
var Module = fx.Options(
	fx.Provide(NewAnimalRoutes),
	fx.Provide(NewShelterRoutes),
	fx.Provide(NewFavoriteRoutes),
	fx.Provide(NewSyncRoutes),
	fx.Provide(NewRoutes),
)

// Routes contains multiple routes
type Routes []Route

// Route interface
type Route interface {
	Setup()
}

// NewRoutes sets up routes
func NewRoutes(
	animalRoutes AnimalRoutes,
	shelterRoutes ShelterRoutes,
	favoriteRoutes FavoriteRoutes,
	syncRoutes SyncRoutes,
) Routes {
	return Routes{
		animalRoutes,
		shelterRoutes,
		favoriteRoutes,
		syncRoutes,
	}
}

// Setup all the route
func (a Routes) Setup() {
	for _, route := range a {
		route.Setup()
	}
}
