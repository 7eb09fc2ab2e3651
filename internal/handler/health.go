package handler

import "net/http"

// GetHealth reports liveness. It deliberately does not touch the database:
// load balancers call it every few seconds and a slow pool should not flap
// the instance.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
