package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"ollama-bridge/pkg/proxy/types"
)

// RecoveryMiddleware turns a handler panic into a 500 with
// {"detail": "Internal Server Error"}. The panic value and stack are logged;
// neither reaches the client. If the handler had already started a response
// (for example an SSE stream) nothing more is written.
//
// Example usage:
//
//	handler = RecoveryMiddleware(handler)
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newResponseWriter(w)

		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}

				slog.ErrorContext(r.Context(), "panic in handler",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				if rw.written {
					return
				}

				rw.Header().Set("Content-Type", "application/json")
				rw.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(rw).Encode(types.NewDetailResponse(http.StatusText(http.StatusInternalServerError)))
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
