package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ollama-bridge/pkg/config"
	"ollama-bridge/pkg/ollama"
	"ollama-bridge/pkg/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

const testModel = "qwen2.5:7b"

func newBackend(t *testing.T, handler http.HandlerFunc) *ollama.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return newClient(server.URL, time.Second)
}

func newClient(baseURL string, idle time.Duration) *ollama.Client {
	return ollama.NewClient(ollama.ClientConfig{
		BaseURL:           baseURL,
		RequestTimeout:    5 * time.Second,
		HealthTimeout:     time.Second,
		StreamIdleTimeout: idle,
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// closedServerURL returns the URL of a server that is no longer listening.
func closedServerURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}

// ndjson writes each line followed by a newline, flushing after each.
func ndjson(t *testing.T, lines ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/x-ndjson")
		for _, line := range lines {
			fmt.Fprintf(w, "%s\n", line)
			w.(http.Flusher).Flush()
		}
	}
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// sseFrames splits an SSE body into frames without their trailing blank line.
func sseFrames(body string) []string {
	var frames []string
	for _, frame := range strings.Split(body, "\n\n") {
		if frame != "" {
			frames = append(frames, frame)
		}
	}
	return frames
}

func decodeFrame(t *testing.T, frame string) map[string]interface{} {
	t.Helper()
	payload, ok := strings.CutPrefix(frame, "data: ")
	if !ok {
		t.Fatalf("frame %q lacks data prefix", frame)
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		t.Fatalf("frame %q is not JSON: %v", frame, err)
	}
	return m
}

func choice(t *testing.T, payload map[string]interface{}) map[string]interface{} {
	t.Helper()
	choices, ok := payload["choices"].([]interface{})
	if !ok || len(choices) != 1 {
		t.Fatalf("choices = %v", payload["choices"])
	}
	return choices[0].(map[string]interface{})
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body %q is not a detail object: %v", w.Body.String(), err)
	}
	return body["detail"]
}

func TestRootHandler(t *testing.T) {
	h := NewRootHandler()

	w := serve(h, http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != ServiceMessage || body["status"] != "running" {
		t.Errorf("body = %v", body)
	}

	if w := serve(h, http.MethodGet, "/nope", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", w.Code)
	}

	w = serve(h, http.MethodPost, "/", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST / status = %d, want 405", w.Code)
	}
	if got := detailOf(t, w); got != "Method Not Allowed" {
		t.Errorf("detail = %q", got)
	}
	if got := w.Header().Get("Allow"); got != http.MethodGet {
		t.Errorf("Allow = %q, want GET", got)
	}
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		backend    *ollama.Client
		wantStatus int
		wantDetail string
	}{
		{
			name: "backend answers 200",
			backend: newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != ollama.PathTags {
					t.Errorf("probe path = %s", r.URL.Path)
				}
				_, _ = w.Write([]byte(`{"models":[]}`))
			}),
			wantStatus: http.StatusOK,
		},
		{
			name:       "connection refused",
			backend:    newClient(closedServerURL(), time.Second),
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "Ollama not available: ",
		},
		{
			name: "backend answers 500",
			backend: newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			}),
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "Ollama not available: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewHealthHandler(tt.backend), http.MethodGet, "/health", "")

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["status"] != "healthy" || body["ollama"] != "connected" {
					t.Errorf("body = %v", body)
				}
				return
			}
			detail := detailOf(t, w)
			if !strings.HasPrefix(detail, tt.wantDetail) || len(detail) == len(tt.wantDetail) {
				t.Errorf("detail = %q, want a descriptive %q message", detail, tt.wantDetail)
			}
		})
	}
}

func TestModelsHandler_PreservesOrder(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"zeta:1b"},{"name":"alpha:7b"},{"name":"mid:3b"}]}`))
	})

	w := serve(NewModelsHandler(backend), http.MethodGet, "/v1/models", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Object string `json:"object"`
		Data   []struct {
			ID      string `json:"id"`
			Object  string `json:"object"`
			OwnedBy string `json:"owned_by"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}

	if body.Object != "list" {
		t.Errorf("object = %q, want list", body.Object)
	}
	want := []string{"zeta:1b", "alpha:7b", "mid:3b"}
	if len(body.Data) != len(want) {
		t.Fatalf("got %d models, want %d", len(body.Data), len(want))
	}
	for i, id := range want {
		if body.Data[i].ID != id || body.Data[i].Object != "model" || body.Data[i].OwnedBy != "ollama" {
			t.Errorf("data[%d] = %+v, want id %s", i, body.Data[i], id)
		}
	}
}

func TestModelsHandler_BackendDown(t *testing.T) {
	w := serve(NewModelsHandler(newClient(closedServerURL(), time.Second)), http.MethodGet, "/v1/models", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if detailOf(t, w) == "" {
		t.Error("expected a detail message")
	}
}

func TestChatHandler_NonStreaming(t *testing.T) {
	var gotBody map[string]interface{}
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ollama.PathChat {
			t.Errorf("path = %s, want %s", r.URL.Path, ollama.PathChat)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"model":"qwen2.5:7b","message":{"role":"assistant","content":"hi"},"done":true,"prompt_eval_count":3,"eval_count":5}`))
	})

	h := NewChatHandler(backend, testModel, nil)
	w := serve(h, http.MethodPost, "/v1/chat/completions", `{"messages":[{"role":"user","content":"hello"}],"max_tokens":0}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}

	if gotBody["model"] != testModel {
		t.Errorf("backend model = %v, want default %s", gotBody["model"], testModel)
	}
	if gotBody["stream"] != false {
		t.Errorf("backend stream = %v, want false", gotBody["stream"])
	}
	options := gotBody["options"].(map[string]interface{})
	if options["temperature"] != 0.7 {
		t.Errorf("temperature = %v, want 0.7", options["temperature"])
	}
	if _, ok := options["num_predict"]; ok {
		t.Errorf("num_predict should be absent for max_tokens 0, got %v", options["num_predict"])
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if id, _ := resp["id"].(string); !strings.HasPrefix(id, "chatcmpl-") {
		t.Errorf("id = %v", resp["id"])
	}
	if resp["object"] != "chat.completion" || resp["model"] != testModel {
		t.Errorf("object/model = %v/%v", resp["object"], resp["model"])
	}
	c := choice(t, resp)
	msg := c["message"].(map[string]interface{})
	if msg["content"] != "hi" || msg["role"] != "assistant" {
		t.Errorf("message = %v", msg)
	}
	if c["finish_reason"] != "stop" {
		t.Errorf("finish_reason = %v", c["finish_reason"])
	}
	usage := resp["usage"].(map[string]interface{})
	if usage["prompt_tokens"] != 3.0 || usage["completion_tokens"] != 5.0 || usage["total_tokens"] != 8.0 {
		t.Errorf("usage = %v", usage)
	}
}

func TestChatHandler_NumPredictForwarded(t *testing.T) {
	var gotBody ollama.ChatRequest
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"message":{"content":"ok"}}`))
	})

	w := serve(NewChatHandler(backend, testModel, nil), http.MethodPost, "/v1/chat/completions",
		`{"model":"llama3","messages":[],"max_tokens":64,"temperature":0.1}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if gotBody.Model != "llama3" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if gotBody.Options.NumPredict == nil || *gotBody.Options.NumPredict != 64 {
		t.Errorf("num_predict = %v, want 64", gotBody.Options.NumPredict)
	}
	if gotBody.Options.Temperature != 0.1 {
		t.Errorf("temperature = %v, want 0.1", gotBody.Options.Temperature)
	}
}

func TestChatHandler_Errors(t *testing.T) {
	missingMessage := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model":"m","done":true}`))
	})
	backendError := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model \"nope\" not found, try pulling it first"}`))
	})

	tests := []struct {
		name       string
		backend    *ollama.Client
		method     string
		body       string
		wantStatus int
		wantDetail string
	}{
		{"missing message", missingMessage, http.MethodPost, `{"messages":[]}`, http.StatusInternalServerError, "message"},
		{"backend error text", backendError, http.MethodPost, `{"messages":[]}`, http.StatusInternalServerError, "not found"},
		{"unreachable", newClient(closedServerURL(), time.Second), http.MethodPost, `{"messages":[]}`, http.StatusInternalServerError, ollama.PathChat},
		{"messages absent", missingMessage, http.MethodPost, `{"model":"m"}`, http.StatusUnprocessableEntity, "messages"},
		{"invalid JSON", missingMessage, http.MethodPost, `{"messages":`, http.StatusUnprocessableEntity, ""},
		{"wrong method", missingMessage, http.MethodGet, "", http.StatusMethodNotAllowed, "Method Not Allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(NewChatHandler(tt.backend, testModel, nil), tt.method, "/v1/chat/completions", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if detail := detailOf(t, w); !strings.Contains(detail, tt.wantDetail) {
				t.Errorf("detail = %q, want it to contain %q", detail, tt.wantDetail)
			}
		})
	}
}

func TestChatHandler_StreamingThreeFrames(t *testing.T) {
	var gotBody ollama.ChatRequest
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		ndjson(t,
			`{"message":{"content":"Hi"}}`,
			`{"done":true,"message":{"content":""}}`,
		)(w, r)
	})

	w := serve(NewChatHandler(backend, testModel, nil), http.MethodPost, "/v1/chat/completions",
		`{"messages":[{"role":"user","content":"hello"}],"stream":true}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Errorf("Content-Type = %q", got)
	}
	if !gotBody.Stream {
		t.Error("backend request should have stream=true")
	}

	frames := sseFrames(w.Body.String())
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3: %q", len(frames), frames)
	}

	first := decodeFrame(t, frames[0])
	if first["object"] != "chat.completion.chunk" {
		t.Errorf("object = %v", first["object"])
	}
	c := choice(t, first)
	if c["delta"].(map[string]interface{})["content"] != "Hi" || c["finish_reason"] != nil {
		t.Errorf("content frame choice = %v", c)
	}

	second := decodeFrame(t, frames[1])
	c = choice(t, second)
	if len(c["delta"].(map[string]interface{})) != 0 || c["finish_reason"] != "stop" {
		t.Errorf("terminal frame choice = %v", c)
	}
	if first["id"] != second["id"] {
		t.Errorf("ids differ: %v vs %v", first["id"], second["id"])
	}

	if frames[2] != "data: [DONE]" {
		t.Errorf("last frame = %q, want data: [DONE]", frames[2])
	}
}

func TestChatHandler_StreamingSkipsMalformedLine(t *testing.T) {
	backend := newBackend(t, ndjson(t,
		`{"message":{"content":"Hel"}}`,
		`not-json`,
		`{"message":{"content":"lo"}}`,
		`{"done":true,"message":{"content":""}}`,
	))

	w := serve(NewChatHandler(backend, testModel, nil), http.MethodPost, "/v1/chat/completions",
		`{"messages":[],"stream":true}`)

	frames := sseFrames(w.Body.String())
	if len(frames) != 4 {
		t.Fatalf("got %d frames, want 4: %q", len(frames), frames)
	}
	for i, want := range []string{"Hel", "lo"} {
		delta := choice(t, decodeFrame(t, frames[i]))["delta"].(map[string]interface{})
		if delta["content"] != want {
			t.Errorf("frame %d content = %v, want %s", i, delta["content"], want)
		}
	}
	if frames[3] != "data: [DONE]" {
		t.Errorf("last frame = %q", frames[3])
	}
}

func TestChatHandler_StreamingEndsWithoutDone(t *testing.T) {
	backend := newBackend(t, ndjson(t, `{"message":{"content":"partial"}}`))

	w := serve(NewChatHandler(backend, testModel, nil), http.MethodPost, "/v1/chat/completions",
		`{"messages":[],"stream":true}`)

	frames := sseFrames(w.Body.String())
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want only the content frame: %q", len(frames), frames)
	}
	if strings.Contains(w.Body.String(), "[DONE]") {
		t.Error("no [DONE] expected when backend never sent done")
	}
}

func TestChatHandler_StreamingBackendDown(t *testing.T) {
	h := NewChatHandler(newClient(closedServerURL(), time.Second), testModel, nil)

	w := serve(h, http.MethodPost, "/v1/chat/completions", `{"messages":[],"stream":true}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json before any SSE", got)
	}
	if detailOf(t, w) == "" {
		t.Error("expected a detail message")
	}
}

func TestChatHandler_StreamingIdleTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		fmt.Fprintln(w, `{"message":{"content":"Hi"}}`)
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	t.Cleanup(server.Close)

	h := NewChatHandler(newClient(server.URL, 100*time.Millisecond), testModel, nil)
	w := serve(h, http.MethodPost, "/v1/chat/completions", `{"messages":[],"stream":true}`)

	frames := sseFrames(w.Body.String())
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want content then error: %q", len(frames), frames)
	}

	errFrame := decodeFrame(t, frames[1])
	detail, ok := errFrame["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("second frame = %v, want an error object", errFrame)
	}
	if detail["code"] != "stream_idle_timeout" {
		t.Errorf("error code = %v, want stream_idle_timeout", detail["code"])
	}
	if strings.Contains(w.Body.String(), "[DONE]") {
		t.Error("no [DONE] expected after a stream error")
	}
}

func TestChatHandler_ClientDisconnectCancelsBackend(t *testing.T) {
	backendCancelled := make(chan struct{})
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		fmt.Fprintln(w, `{"message":{"content":"Hi"}}`)
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
			close(backendCancelled)
		case <-time.After(5 * time.Second):
		}
	})

	bridge := httptest.NewServer(NewChatHandler(backend, testModel, nil))
	t.Cleanup(bridge.Close)

	resp, err := http.Post(bridge.URL, "application/json", strings.NewReader(`{"messages":[],"stream":true}`))
	if err != nil {
		t.Fatal(err)
	}

	buf := make([]byte, 6)
	if _, err := io.ReadFull(resp.Body, buf); err != nil {
		t.Fatalf("reading first frame: %v", err)
	}
	if string(buf) != "data: " {
		t.Fatalf("unexpected stream start %q", buf)
	}
	resp.Body.Close()

	select {
	case <-backendCancelled:
	case <-time.After(3 * time.Second):
		t.Fatal("backend request was not cancelled after the client went away")
	}
}

func TestCompletionHandler_NonStreaming(t *testing.T) {
	var gotBody ollama.GenerateRequest
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ollama.PathGenerate {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"response":"four","prompt_eval_count":6}`))
	})

	w := serve(NewCompletionHandler(backend, testModel, nil), http.MethodPost, "/v1/completions",
		`{"prompt":"2+2=","max_tokens":8}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	if gotBody.Prompt != "2+2=" || gotBody.Model != testModel {
		t.Errorf("backend request = %+v", gotBody)
	}
	if gotBody.Options.NumPredict == nil || *gotBody.Options.NumPredict != 8 {
		t.Errorf("num_predict = %v, want 8", gotBody.Options.NumPredict)
	}

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if id, _ := resp["id"].(string); !strings.HasPrefix(id, "cmpl-") {
		t.Errorf("id = %v", resp["id"])
	}
	if resp["object"] != "text_completion" {
		t.Errorf("object = %v", resp["object"])
	}
	if c := choice(t, resp); c["text"] != "four" || c["finish_reason"] != "stop" {
		t.Errorf("choice = %v", c)
	}
	if total := resp["usage"].(map[string]interface{})["total_tokens"]; total != 6.0 {
		t.Errorf("total_tokens = %v, want 6", total)
	}
}

func TestCompletionHandler_Errors(t *testing.T) {
	missingResponse := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"done":true}`))
	})

	w := serve(NewCompletionHandler(missingResponse, testModel, nil), http.MethodPost, "/v1/completions", `{"prompt":"x"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("missing response status = %d, want 500", w.Code)
	}

	w = serve(NewCompletionHandler(missingResponse, testModel, nil), http.MethodPost, "/v1/completions", `{"model":"m"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing prompt status = %d, want 422", w.Code)
	}
}

func TestCompletionHandler_Streaming(t *testing.T) {
	backend := newBackend(t, ndjson(t,
		`{"response":"Once"}`,
		``,
		`{"response":" upon"}`,
		`{"response":"","done":true,"eval_count":2}`,
	))

	w := serve(NewCompletionHandler(backend, testModel, nil), http.MethodPost, "/v1/completions",
		`{"prompt":"tell me a story","stream":true}`)

	frames := sseFrames(w.Body.String())
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3: %q", len(frames), frames)
	}
	for i, want := range []string{"Once", " upon"} {
		payload := decodeFrame(t, frames[i])
		if payload["object"] != "text_completion" {
			t.Errorf("frame %d object = %v", i, payload["object"])
		}
		c := choice(t, payload)
		if c["text"] != want || c["finish_reason"] != nil {
			t.Errorf("frame %d choice = %v, want text %q", i, c, want)
		}
	}
	if frames[2] != "data: [DONE]" {
		t.Errorf("last frame = %q", frames[2])
	}
}

func TestStreamMetricsRecorded(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(&config.MetricsConfig{Enabled: true, Namespace: "h"}, registry)

	backend := newBackend(t, ndjson(t,
		`{"message":{"content":"a"}}`,
		`garbage`,
		`{"done":true,"message":{"content":"b"},"prompt_eval_count":2,"eval_count":3}`,
	))

	serve(NewChatHandler(backend, testModel, collector), http.MethodPost, "/v1/chat/completions",
		`{"messages":[],"stream":true}`)

	w := httptest.NewRecorder()
	collector.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	exposition := w.Body.String()

	for _, want := range []string{
		`h_streams_total{endpoint="chat",outcome="completed"} 1`,
		`h_stream_events_total{endpoint="chat",kind="malformed"} 1`,
		`h_stream_events_total{endpoint="chat",kind="content"} 1`,
		`h_stream_events_total{endpoint="chat",kind="done"} 1`,
		`h_tokens_total{endpoint="chat",model="qwen2.5:7b",type="completion"} 3`,
	} {
		if !strings.Contains(exposition, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}
