package lib

import (
	"github.com/pawhub/pawhub/pkg/websocket"
)

// NewWebSocket creates the live-update hub
func NewWebSocket(logger Logger) *websocket.Hub {
	return websocket.NewHub(logger.DesugarZap)
}
