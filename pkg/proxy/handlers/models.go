package handlers

import (
	"log/slog"
	"net/http"

	"ollama-bridge/pkg/proxy"
)

// ModelsHandler lists the backend's models in OpenAI form, preserving the
// backend's order.
type ModelsHandler struct {
	Backend Backend
}

// NewModelsHandler creates a new model list handler.
func NewModelsHandler(backend Backend) *ModelsHandler {
	return &ModelsHandler{Backend: backend}
}

// ServeHTTP implements http.Handler.
func (h *ModelsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	tags, err := h.Backend.Tags(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list models", "error", err)
		writeDetail(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, r, proxy.FormatModelList(tags))
}
