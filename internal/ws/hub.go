// Package ws holds the WebSocket hub behind the live admin dashboard.
package ws

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub stores all active dashboard connections keyed by client ID.
// Broadcast fans a JSON snapshot out to every connection; writes that fail
// drop the client, so a dead dashboard can never wedge a trip save.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
	logger  *slog.Logger
}

// NewHub constructs an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		logger:  logger,
	}
}

// Add registers a connection under a unique client ID.
// A second connection with the same ID replaces (and closes) the first.
func (h *Hub) Add(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[id]; ok {
		_ = old.Close()
	}
	h.clients[id] = conn
	h.logger.Info("ws client connected", "id", id)
}

// Remove deletes and closes a connection.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.clients[id]; ok {
		_ = conn.Close()
		delete(h.clients, id)
		h.logger.Info("ws client disconnected", "id", id)
	}
}

// Broadcast sends v as JSON to every connected client.
// Clients whose write fails are dropped.
func (h *Hub) Broadcast(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteJSON(v); err != nil {
			h.logger.Warn("ws write failed, dropping client", "id", id, "error", err)
			_ = conn.Close()
			delete(h.clients, id)
		}
	}
}

// Count returns the number of connected clients.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
