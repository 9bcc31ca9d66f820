package route

import (
	"github.com/pawhub/pawhub/api/account/controller"
	"github.com/pawhub/pawhub/lib"
)

type AccessLogRoutes struct {
	logger              lib.Logger
	handler             lib.HttpHandler
	accessLogController controller.AccessLogController
}

// NewAccessLogRoutes creates new access log routes
func NewAccessLogRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	accessLogController controller.AccessLogController,
) AccessLogRoutes {
	return AccessLogRoutes{
		handler:             handler,
		logger:              logger,
		accessLogController: accessLogController,
	}
}

// Setup access log routes
func (a AccessLogRoutes) Setup() {
	a.handler.RouterV1.GET("/logs", a.accessLogController.Query)
}
