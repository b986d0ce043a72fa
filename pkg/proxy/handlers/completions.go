package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ollama-bridge/pkg/proxy"
	"ollama-bridge/pkg/telemetry/metrics"
)

// CompletionHandler serves POST /v1/completions by way of Ollama's
// /api/generate.
type CompletionHandler struct {
	Backend      Backend
	DefaultModel string
	Metrics      *metrics.Collector
}

// NewCompletionHandler creates a new text completion handler.
func NewCompletionHandler(backend Backend, defaultModel string, collector *metrics.Collector) *CompletionHandler {
	return &CompletionHandler{Backend: backend, DefaultModel: defaultModel, Metrics: collector}
}

// ServeHTTP implements http.Handler.
func (h *CompletionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	ctx := r.Context()
	startTime := time.Now()

	req, err := proxy.ParseCompletionRequest(r, h.DefaultModel)
	if err != nil {
		slog.WarnContext(ctx, "rejected completion request", "error", err)
		writeError(w, r, err)
		return
	}

	ollamaReq := proxy.ToOllamaGenerateRequest(req)

	slog.InfoContext(ctx, "processing completion request",
		"model", req.Model,
		"prompt_len", len(*req.Prompt),
		"stream", req.Stream,
	)

	if req.Stream {
		stream, err := h.Backend.StreamGenerate(ctx, ollamaReq)
		if err != nil {
			h.fail(w, r, req.Model, startTime, err)
			return
		}
		relayStream(w, r, &streamRelay{
			endpoint: EndpointCompletion,
			model:    req.Model,
			stream:   stream,
			reframer: proxy.NewCompletionReframer(req.Model),
			metrics:  h.Metrics,
			start:    startTime,
		})
		return
	}

	resp, err := h.Backend.Generate(ctx, ollamaReq)
	if err != nil {
		h.fail(w, r, req.Model, startTime, err)
		return
	}

	out, err := proxy.FormatCompletionResponse(resp, req.Model)
	if err != nil {
		h.fail(w, r, req.Model, startTime, err)
		return
	}

	elapsed := time.Since(startTime)
	h.Metrics.RecordCompletion(EndpointCompletion, req.Model, statusSuccess, elapsed)
	h.Metrics.RecordTokens(EndpointCompletion, req.Model, out.Usage.PromptTokens, out.Usage.CompletionTokens)

	slog.InfoContext(ctx, "completion successful",
		"model", req.Model,
		"prompt_tokens", out.Usage.PromptTokens,
		"completion_tokens", out.Usage.CompletionTokens,
		"total_latency_ms", elapsed.Milliseconds(),
	)

	writeJSON(w, r, out)
}

func (h *CompletionHandler) fail(w http.ResponseWriter, r *http.Request, model string, start time.Time, err error) {
	h.Metrics.RecordCompletion(EndpointCompletion, model, statusError, time.Since(start))
	slog.ErrorContext(r.Context(), "completion failed",
		"model", model,
		"error", err,
	)
	writeError(w, r, err)
}
