// Package websocket implements the live-update hub: browsers connected to
// /ws receive catalog events (new listings, status changes) as JSON frames.
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is one frame pushed to connected clients
type Event struct {
	Topic     string      `json:"topic"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// Topics
const (
	TopicAnimalCreated = "animal.created"
	TopicAnimalUpdated = "animal.updated"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected peers and fans events out to all of them.
// Peers that stop draining their send buffer are dropped.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *zap.Logger

	mu      sync.RWMutex
	clients map[*client]struct{}
}

// NewHub creates the hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the catalog stream is public, same as the listing endpoints
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger.With(zap.String("module", "websocket")),
		clients: make(map[*client]struct{}),
	}
}

// HandleConnection upgrades the request and serves the peer until it
// disconnects. Intended to be called from a plain http.HandlerFunc so the
// upgrade bypasses the echo middleware chain.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("peer connected", zap.Int("peers", count))

	go h.writeLoop(c)
	h.readLoop(c)
}

// Broadcast sends an event to every connected peer
func (h *Hub) Broadcast(topic string, payload interface{}) {
	data, err := json.Marshal(Event{
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		h.logger.Error("marshal event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// peer is not draining; drop the frame, the reaper in
			// writeLoop will catch a dead connection
		}
	}
}

// PeerCount returns the number of connected peers
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	c.conn.Close()
}

// readLoop discards inbound frames; the stream is push-only, but reading
// is required to process control frames and detect closure
func (h *Hub) readLoop(c *client) {
	defer h.remove(c)
	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(c)
			return
		}
	}
}
