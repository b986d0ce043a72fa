package handlers

import (
	"net/http"

	"ollama-bridge/pkg/proxy/types"
)

// ServiceMessage is returned by GET /.
const ServiceMessage = "Ollama OpenAI-Compatible API"

// RootHandler answers GET / with a fixed status document. It is mounted on
// the catch-all pattern, so any other unmatched path gets a 404 detail.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// ServeHTTP implements http.Handler.
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeDetail(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, &types.StatusResponse{Message: ServiceMessage, Status: "running"})
}
