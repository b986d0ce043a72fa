// Package ollamatest provides a scripted Ollama server for tests.
package ollamatest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// Server is a fake Ollama API. Each path answers with the Response set for
// it; unknown paths get 404.
type Server struct {
	server    *httptest.Server
	responses map[string]Response
	requests  map[string][][]byte
	mu        sync.Mutex
}

// Response defines a scripted reply.
type Response struct {
	StatusCode int
	Body       interface{}
	Delay      time.Duration

	// Lines are written one per line as application/x-ndjson, flushed
	// individually with LineDelay between them. Body is ignored when set.
	Lines     []string
	LineDelay time.Duration
}

// NewServer starts a fake server.
func NewServer() *Server {
	s := &Server{
		responses: make(map[string]Response),
		requests:  make(map[string][][]byte),
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handler))
	return s
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.server.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.server.Close()
}

// SetResponse scripts the reply for path.
func (s *Server) SetResponse(path string, response Response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[path] = response
}

// Requests returns the request bodies received on path, oldest first.
func (s *Server) Requests(path string) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]byte, len(s.requests[path]))
	copy(out, s.requests[path])
	return out
}

// RequestCount returns how many requests path has received.
func (s *Server) RequestCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests[path])
}

func (s *Server) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests[r.URL.Path] = append(s.requests[r.URL.Path], body)
	response, ok := s.responses[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if response.Delay > 0 {
		select {
		case <-time.After(response.Delay):
		case <-r.Context().Done():
			return
		}
	}

	status := response.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	if len(response.Lines) > 0 {
		s.writeLines(w, r, status, response)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	switch v := response.Body.(type) {
	case nil:
	case string:
		_, _ = w.Write([]byte(v))
	case []byte:
		_, _ = w.Write(v)
	default:
		_ = json.NewEncoder(w).Encode(v)
	}
}

func (s *Server) writeLines(w http.ResponseWriter, r *http.Request, status int, response Response) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(status)

	flusher, _ := w.(http.Flusher)
	for i, line := range response.Lines {
		if i > 0 && response.LineDelay > 0 {
			select {
			case <-time.After(response.LineDelay):
			case <-r.Context().Done():
				return
			}
		}
		fmt.Fprintln(w, line)
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// ChatLine returns one /api/chat stream line carrying content.
func ChatLine(model, content string) string {
	return mustJSON(map[string]interface{}{
		"model":   model,
		"message": map[string]string{"role": "assistant", "content": content},
		"done":    false,
	})
}

// ChatDone returns the closing /api/chat line with token counts.
func ChatDone(model string, promptTokens, completionTokens int) string {
	return mustJSON(map[string]interface{}{
		"model":             model,
		"message":           map[string]string{"role": "assistant", "content": ""},
		"done":              true,
		"prompt_eval_count": promptTokens,
		"eval_count":        completionTokens,
	})
}

// GenerateLine returns one /api/generate stream line carrying text.
func GenerateLine(model, text string) string {
	return mustJSON(map[string]interface{}{
		"model":    model,
		"response": text,
		"done":     false,
	})
}

// GenerateDone returns the closing /api/generate line with token counts.
func GenerateDone(model string, promptTokens, completionTokens int) string {
	return mustJSON(map[string]interface{}{
		"model":             model,
		"response":          "",
		"done":              true,
		"prompt_eval_count": promptTokens,
		"eval_count":        completionTokens,
	})
}

// Tags returns a /api/tags body listing names in order.
func Tags(names ...string) map[string]interface{} {
	models := make([]map[string]string, 0, len(names))
	for _, name := range names {
		models = append(models, map[string]string{"name": name, "model": name})
	}
	return map[string]interface{}{"models": models}
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
