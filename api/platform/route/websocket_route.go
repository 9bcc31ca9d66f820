package route

import (
	"github.com/pawhub/pawhub/api/platform/controller"
	"github.com/pawhub/pawhub/lib"
)

type WebSocketRoutes struct {
	logger              lib.Logger
	handler             lib.HttpHandler
	webSocketController controller.WebSocketController
}

// NewWebSocketRoutes creates new websocket routes
func NewWebSocketRoutes(
	logger lib.Logger,
	handler lib.HttpHandler,
	webSocketController controller.WebSocketController,
) WebSocketRoutes {
	return WebSocketRoutes{
		handler:             handler,
		logger:              logger,
		webSocketController: webSocketController,
	}
}

// Setup websocket routes. The /ws upgrade itself is intercepted before
// the echo engine during bootstrap; only the status endpoint goes here.
func (a WebSocketRoutes) Setup() {
	a.handler.RouterV1.GET("/ws/peers", a.webSocketController.PeerCount)
}
