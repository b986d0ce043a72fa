package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoggingMiddleware_CapturesStatus(t *testing.T) {
	var rw *responseWriter
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw = w.(*responseWriter)
		if GetStartTime(r.Context()).IsZero() {
			t.Error("start time missing from context")
		}
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("short and stout"))
	})

	w := httptest.NewRecorder()
	LoggingMiddleware(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want first WriteHeader to win", w.Code)
	}
	if rw.statusCode != http.StatusTeapot {
		t.Errorf("captured status = %d", rw.statusCode)
	}
	if rw.bytes != int64(len("short and stout")) {
		t.Errorf("captured bytes = %d", rw.bytes)
	}
}

func TestLoggingMiddleware_Flushes(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			t.Fatal("wrapped writer must implement http.Flusher")
		}
		_, _ = w.Write([]byte("data: x\n\n"))
		flusher.Flush()
	})

	w := httptest.NewRecorder()
	LoggingMiddleware(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if !w.Flushed {
		t.Error("Flush did not reach the underlying writer")
	}
}

func TestNewResponseWriter_ReusesWrapper(t *testing.T) {
	inner := newResponseWriter(httptest.NewRecorder())
	if newResponseWriter(inner) != inner {
		t.Error("wrapping a responseWriter twice should return the same wrapper")
	}
}
