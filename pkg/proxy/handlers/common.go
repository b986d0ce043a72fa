package handlers

import (
	"log/slog"
	"net/http"

	"ollama-bridge/pkg/proxy"
)

// allowMethod answers 405 with a detail body unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeDetail(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	return false
}

func writeJSON(w http.ResponseWriter, r *http.Request, data interface{}) {
	if err := proxy.WriteJSONResponse(w, http.StatusOK, data); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}

func writeDetail(w http.ResponseWriter, r *http.Request, status int, detail string) {
	if err := proxy.WriteDetailResponse(w, status, detail); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", "error", err)
	}
}

// writeError maps err to a status and detail and writes it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := proxy.HandleError(err)
	writeDetail(w, r, status, detail)
}
