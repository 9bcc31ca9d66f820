package route

import (
	"github.com/pawhub/pawhub/api/catalog/controller"
	"github.com/pawhub/pawhub/lib"
)

type SyncRoutes struct {
	logger         lib.Logger
	handler        lib.HttpHandler
	syncController controller.SyncController
}

// NewSyncRoutes creates new sync routes
func NewSyncRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	syncController controller.SyncController,
) SyncRoutes {
	return SyncRoutes{
		handler:        handler,
		logger:         logger,
		syncController: syncController,
	}
}

// Setup sync routes
func (a SyncRoutes) Setup() {
	a.handler.RouterV1.POST("/sync", a.syncController.Run)
}
