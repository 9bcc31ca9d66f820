package route

import (
	"github.com/pawhub/pawhub/api/platform/controller"
	"github.com/pawhub/pawhub/lib"
)

type PhotoRoutes struct {
	config          lib.Config
	logger          lib.Logger
	handler         lib.HttpHandler
	photoController controller.PhotoController
}

// NewPhotoRoutes creates new photo routes
func NewPhotoRoutes(
	config lib.Config,
	logger lib.Logger,
	handler lib.HttpHandler,
	photoController controller.PhotoController,
) PhotoRoutes {
	return PhotoRoutes{
		config:          config,
		handler:         handler,
		logger:          logger,
		photoController: photoController,
	}
}

// Setup photo routes
func (a PhotoRoutes) Setup() {
	api := a.handler.RouterV1.Group("/photos")
	{
		api.POST("", a.photoController.Upload)
		api.DELETE("", a.photoController.Delete)
	}

	// photos stored on disk are served straight from the engine
	if !a.config.OSS.IsMinio() && a.config.OSS.Local != nil {
		a.handler.Engine.Static(a.config.OSS.Local.BaseURL, a.config.OSS.Local.StoragePath)
	}
}
