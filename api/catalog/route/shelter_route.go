package route

import (
	"github.com/pawhub/pawhub/api/catalog/controller"
	"github.com/pawhub/pawhub/lib"
)

type ShelterRoutes struct {
	logger            lib.Logger
	handler           lib.HttpHandler
	shelterController controller.ShelterController
}

// NewShelterRoutes creates new shelter routes
func NewShelterRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	shelterController controller.ShelterController,
) ShelterRoutes {
	return ShelterRoutes{
		handler:           handler,
		logger:            logger,
		shelterController: shelterController,
	}
}

// Setup shelter routes
func (a ShelterRoutes) Setup() {
	api := a.handler.RouterV1.Group("/shelters")
	{
		api.GET("", a.shelterController.Query)
		api.GET("/options", a.shelterController.GetOptions)
		api.GET("/:id", a.shelterController.Get)
		api.POST("", a.shelterController.Create)
		api.PUT("/:id", a.shelterController.Update)
		api.DELETE("/:id", a.shelterController.Delete)
	}
}
