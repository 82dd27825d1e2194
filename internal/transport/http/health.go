package http

import "net/http"

// HealthHandler reports process liveness. Storage and the replica are not
// probed here; readiness is implied by the pool ping at startup.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
