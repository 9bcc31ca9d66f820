package route

import (
	"github.com/pawhub/pawhub/api/catalog/controller"
	"github.com/pawhub/pawhub/lib"
)

type AnimalRoutes struct {
	logger             lib.Logger
	handler            lib.HttpHandler
	animalController   controller.AnimalController
	favoriteController controller.FavoriteController
}

// NewAnimalRoutes creates new animal routes
func NewAnimalRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	animalController controller.AnimalController,
	favoriteController controller.FavoriteController,
) AnimalRoutes {
	return AnimalRoutes{
		handler:            handler,
		logger:             logger,
		animalController:   animalController,
		favoriteController: favoriteController,
	}
}

// Setup animal routes
func (a AnimalRoutes) Setup() {
	api := a.handler.RouterV1.Group("/animals")
	{
		api.GET("", a.animalController.Query)
		api.GET("/options", a.animalController.GetOptions)
		api.GET("/:id", a.animalController.Get)
		api.POST("", a.animalController.Create)
		api.PUT("/:id", a.animalController.Update)
		api.DELETE("/:id", a.animalController.Delete)
		api.PUT("/:id/favorite", a.favoriteController.Add)
		api.DELETE("/:id/favorite", a.favoriteController.Remove)
	}
}
