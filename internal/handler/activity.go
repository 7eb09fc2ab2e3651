package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS for the ws endpoint is enforced by the middleware chain.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// GetActivity returns the recent-activity feed, newest first.
// GET /activity
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	feed, err := s.activity.Feed(r.Context(), s.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feed)
}

// ActivityWS upgrades to a WebSocket and registers the client with the hub.
// The hub pushes a fresh stats-and-activity snapshot after every trip save;
// clients only read.
// GET /activity/ws
func (s *Server) ActivityWS(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: errorDetail{Code: "unavailable", Message: "live feed is not enabled"},
		})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return
	}

	id := uuid.NewString()
	s.hub.Add(id, conn)

	// Drain reads so pings are answered; any read error means the client
	// is gone.
	go func() {
		defer s.hub.Remove(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
