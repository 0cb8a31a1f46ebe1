package handlers

import "net/http"

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	version string
	ready   func() error
}

// NewHealthHandler constructs a HealthHandler.  ready is consulted by
// Readiness and may be nil when the service has no startup dependencies.
func NewHealthHandler(version string, ready func() error) *HealthHandler {
	return &HealthHandler{version: version, ready: ready}
}

// Liveness answers as long as the process is serving requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// Readiness answers 200 once startup dependencies (the ledger load) have
// succeeded, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, _ *http.Request) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"reason": err.Error(),
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
