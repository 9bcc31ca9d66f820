package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/pkg/echox"
	"github.com/pawhub/pawhub/pkg/websocket"
)

// WebSocketController serves the live catalog stream
type WebSocketController struct {
	hub    *websocket.Hub
	logger lib.Logger
}

// NewWebSocketController creates new websocket controller
func NewWebSocketController(hub *websocket.Hub, logger lib.Logger) WebSocketController {
	return WebSocketController{
		hub:    hub,
		logger: logger,
	}
}

// HandleWebSocket upgrades a raw HTTP request, bypassing the echo
// middleware chain; wired in front of the engine during bootstrap
func (c WebSocketController) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	c.hub.HandleConnection(w, r)
}

// @tags WebSocket
// @summary Connected Peer Count
// @produce application/json
// @success 200 {object} echox.Response{data=int} "ok"
// @router /api/v1/ws/peers [get]
func (c WebSocketController) PeerCount(ctx echo.Context) error {
	return echox.OK(ctx, c.hub.PeerCount())
}
