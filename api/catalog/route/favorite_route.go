package route

import (
	"github.com/pawhub/pawhub/api/catalog/controller"
	"github.com/pawhub/pawhub/lib"
)

type FavoriteRoutes struct {
	logger             lib.Logger
	handler            lib.HttpHandler
	favoriteController controller.FavoriteController
}

// NewFavoriteRoutes creates new favorite routes
func NewFavoriteRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	favoriteController controller.FavoriteController,
) FavoriteRoutes {
	return FavoriteRoutes{
		handler:            handler,
		logger:             logger,
		favoriteController: favoriteController,
	}
}

// Setup favorite routes
func (a FavoriteRoutes) Setup() {
	a.handler.RouterV1.GET("/favorites", a.favoriteController.Query)
}
