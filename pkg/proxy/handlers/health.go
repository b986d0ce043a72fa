package handlers

import (
	"log/slog"
	"net/http"

	"ollama-bridge/pkg/proxy/types"
)

// HealthHandler passes a health check through to Ollama. The bridge is
// healthy exactly when GET /api/tags answers 200 within the health timeout.
type HealthHandler struct {
	Backend Backend
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(backend Backend) *HealthHandler {
	return &HealthHandler{Backend: backend}
}

// ServeHTTP implements http.Handler.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	if err := h.Backend.Ping(r.Context()); err != nil {
		slog.WarnContext(r.Context(), "ollama health check failed", "error", err)
		writeDetail(w, r, http.StatusServiceUnavailable, "Ollama not available: "+err.Error())
		return
	}

	writeJSON(w, r, &types.HealthResponse{Status: "healthy", Ollama: "connected"})
}
